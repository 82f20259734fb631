// This file is part of Horizon99.
//
// Horizon99 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Horizon99 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Horizon99.  If not, see <https://www.gnu.org/licenses/>.

package peb

// Card is implemented by every peripheral card that can be inserted into
// the PEB.
type Card interface {
	// ID returns a short name for the card. Used for log tags and for
	// naming persistent resources.
	ID() string

	// Reset the card. Called on a (soft or hard) reset of the host system.
	// Cards re-read their configuration switches at this point.
	Reset()

	// Read a byte from the card. The second return value is false if the
	// card has not decoded the offset, leaving the bus undriven.
	Read(offset uint32) (uint8, bool)

	// Write a byte to the card. Undecoded writes are dropped silently.
	Write(offset uint32, data uint8)

	// CRUWrite sets or clears a single CRU bit. The offset is in bus
	// address form. Offsets outside the card's CRU base are ignored.
	CRUWrite(offset uint16, data uint8)
}

// PEB is the Peripheral Expansion Box. It owns the inserted cards and
// dispatches bus operations to them.
type PEB struct {
	cards []Card
}

// NewPEB is the preferred method of initialisation for the PEB type.
func NewPEB() *PEB {
	return &PEB{
		cards: make([]Card, 0, 8),
	}
}

// Insert a card into the next free slot.
func (pb *PEB) Insert(c Card) {
	pb.cards = append(pb.cards, c)
}

// Reset all inserted cards.
func (pb *PEB) Reset() {
	for _, c := range pb.cards {
		c.Reset()
	}
}

// Read a byte from the bus. The first card to drive the bus wins. The
// second return value is false if no card responded.
func (pb *PEB) Read(offset uint32) (uint8, bool) {
	for _, c := range pb.cards {
		if data, ok := c.Read(offset); ok {
			return data, true
		}
	}
	return 0, false
}

// Write a byte to the bus. Writes are broadcast to every card; cards that
// do not decode the offset ignore it.
func (pb *PEB) Write(offset uint32, data uint8) {
	for _, c := range pb.cards {
		c.Write(offset, data)
	}
}

// CRUWrite broadcasts a CRU bit write to every card.
func (pb *PEB) CRUWrite(offset uint16, data uint8) {
	for _, c := range pb.cards {
		c.CRUWrite(offset, data)
	}
}
