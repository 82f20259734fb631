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

package horizon

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/horizon99/logger"
	"github.com/jetsetilly/horizon99/prefs"
)

// Sizes of the fixed storage regions on the card.
const (
	ROSSize = 8192
	RAMSize = 32768
)

// a main store page is 2 KiB. page numbers shift by this amount.
const pageShift = 11

// Ramdisk is the Horizon ramdisk card. It implements the peb.Card
// interface.
type Ramdisk struct {
	prf *Preferences

	// the battery-backed main store and ROS, and the optional unbuffered
	// 32K expansion. ram is nil when the expansion is not fitted.
	//
	// storage is allocated once, at card creation. only Size and Expansion
	// are read at that point; everything else is latched at reset
	nvram []uint8
	ros   []uint8
	ram   []uint8

	size Size

	// switch settings latched at the most recent reset
	cruHorizon uint16
	cruPhoenix uint16
	split      SplitMode
	useRAMBO   bool
	genmodFix  bool

	// runtime state. page is the page-address register; its individual
	// bits are set and cleared through the CRU
	page       uint16
	selected   bool
	ramboMode  bool
	hideswitch bool
}

// NewRamdisk is the preferred method of initialisation for the Ramdisk
// type. Storage is sized according to the Size and Expansion preferences;
// both stores start zeroed, as a battery-backed SRAM would after first
// power-up.
func NewRamdisk(prf *Preferences) *Ramdisk {
	card := &Ramdisk{
		prf:  prf,
		size: Size(prf.Size.Get().(int)),
	}

	card.nvram = make([]uint8, card.size.Bytes())
	card.ros = make([]uint8, ROSSize)

	if prf.Expansion.Get().(bool) {
		card.ram = make([]uint8, RAMSize)
	}

	// the hide switch is a physical toggle that can be flipped at any
	// time, not only at reset
	prf.Hide.SetHookPost(func(v prefs.Value) error {
		card.SetHideSwitch(v.(bool))
		return nil
	})

	card.Reset()

	return card
}

// ID implements the peb.Card interface.
func (card *Ramdisk) ID() string {
	return "horizon"
}

func (card *Ramdisk) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: page %04x", card.size, card.page))
	if card.selected {
		s.WriteString(" [ROS]")
	}
	if card.ramboMode {
		s.WriteString(" [RAMBO]")
	}
	if card.hideswitch {
		s.WriteString(" [hidden]")
	}
	return s.String()
}

// Reset implements the peb.Card interface. Switch settings are re-read from
// the card preferences and the paging state returns to its defaults.
func (card *Ramdisk) Reset() {
	card.cruHorizon = uint16(card.prf.CRUBaseA.Get().(int))
	card.cruPhoenix = uint16(card.prf.CRUBaseB.Get().(int))
	card.split = SplitMode(card.prf.Split.Get().(int))
	card.useRAMBO = card.prf.RAMBO.Get().(bool)
	card.genmodFix = card.prf.GenmodFix.Get().(bool)
	card.hideswitch = card.prf.Hide.Get().(bool)

	card.page = 0
	card.selected = false
	card.ramboMode = false

	logger.Logf("horizon", "reset: %s, cru %04x/%04x, split %s, rambo %v, genmod %v",
		card.size, card.cruHorizon, card.cruPhoenix, card.split, card.useRAMBO, card.genmodFix)
}

// SetHideSwitch flips the physical hide switch. The switch disables all
// access to the ROS and main store; the 32K expansion is not affected.
func (card *Ramdisk) SetHideSwitch(set bool) {
	logger.Logf("horizon", "hide switch %v", set)
	card.hideswitch = set
}

// the region tags returned by the decode() function.
type region int

const (
	regionNone region = iota
	regionMain
	regionROS
	regionRAM
)

// the DSR window is 0x4000 to 0x5fff. Genmod systems decode the extended
// address lines as well, placing the window at 0x74000.
func inDSRSpace(offset uint32, genmod bool) bool {
	if genmod {
		return offset&0x7e000 == 0x74000
	}
	return offset&0x0e000 == 0x04000
}

// the cartridge window is 0x6000 to 0x7fff; 0x76000 on Genmod systems.
func inCartSpace(offset uint32, genmod bool) bool {
	if genmod {
		return offset&0x7e000 == 0x76000
	}
	return offset&0x0e000 == 0x06000
}

// decode maps a bus offset and the current card state to a storage region
// and an index into it. It is the single source of truth for the address
// map; Read() and Write() differ only in the direction of the transfer.
func (card *Ramdisk) decode(offset uint32) (region, uint32) {
	// the 32K expansion responds first and unconditionally. the manual
	// notes that this memory is not affected by the hide switch
	if card.ram != nil {
		switch (offset & 0xe000) >> 13 {
		case 1: // 2000-3fff
			return regionRAM, offset & 0x1fff
		case 5: // a000-bfff
			return regionRAM, (offset & 0x1fff) | 0x2000
		case 6: // c000-dfff
			return regionRAM, (offset & 0x1fff) | 0x4000
		case 7: // e000-ffff
			return regionRAM, (offset & 0x1fff) | 0x6000
		}
	}

	if card.hideswitch {
		return regionNone, 0
	}

	// RAMBO mode does not need the card to be selected
	if !card.selected && !card.ramboMode {
		return regionNone, 0
	}

	if !card.ramboMode {
		if inDSRSpace(offset, card.genmodFix) {
			if offset&0x1800 == 0x1800 {
				// the currently paged-in 2 KiB of the main store
				return regionMain, (uint32(card.page) << pageShift) | (offset & 0x07ff)
			}
			return regionROS, offset & 0x1fff
		}
		return regionNone, 0
	}

	if inDSRSpace(offset, card.genmodFix) {
		return regionROS, offset & 0x1fff
	}

	if inCartSpace(offset, card.genmodFix) {
		// RAMBO page numbers are multiples of four, each one covering
		// four traditional pages. the two low bits of the page register
		// are cleared away
		return regionMain, (uint32(card.page&0xfffc) << pageShift) | (offset & 0x1fff)
	}

	return regionNone, 0
}

// Read implements the peb.Card interface. The second return value is false
// when the card leaves the bus undriven.
func (card *Ramdisk) Read(offset uint32) (uint8, bool) {
	switch r, idx := card.decode(offset); r {
	case regionMain:
		return card.nvram[idx], true
	case regionROS:
		return card.ros[idx], true
	case regionRAM:
		return card.ram[idx], true
	}
	return 0, false
}

// Write implements the peb.Card interface. Undecoded writes are dropped.
func (card *Ramdisk) Write(offset uint32, data uint8) {
	switch r, idx := card.decode(offset); r {
	case regionMain:
		card.nvram[idx] = data
	case regionROS:
		card.ros[idx] = data
	case regionRAM:
		card.ram[idx] = data
	}
}

// CRUWrite implements the peb.Card interface. The offset is in bus address
// form: the CRU base in the high byte and the bit number in bits 1 to 4.
func (card *Ramdisk) CRUWrite(offset uint16, data uint8) {
	card.SetCRUBit(offset&0xff00, int(offset>>1)&0x0f, data != 0)
}

// SetCRUBit sets or clears a single CRU bit of the card. Bases that do not
// match either of the card's configured bases are ignored, as is a base of
// zero (the "off" position of the base selection DIP).
//
// The bit assignment follows the real card:
//
//	0      card select (ROS enable)
//	1, 2   page bits 1 and 0 - note the crossed lines
//	3-9    page bits 2 to 8
//	10-13  page bits 9 to 12, as far as the fitted capacity needs
//	14     unused
//	15     RAMBO mode toggle (when the RAMBO jumper is fitted)
//
// The drive-select page bit of a split card is recomputed on every
// qualifying write, whatever the bit number, because in Geneve split mode
// it depends on the bit number of the most recent access.
func (card *Ramdisk) SetCRUBit(base uint16, bit int, value bool) {
	if base == 0 || (base != card.cruHorizon && base != card.cruPhoenix) {
		return
	}

	// the highest page bit reachable through bits 10-13 depends on the
	// fitted capacity. in split mode that top bit doubles as the drive
	// select and is excluded here
	splitBit := int(card.size) + 10
	splitPageBit := uint16(0x0200) << card.size

	logger.Logf("horizon", "cru write bit %d <- %v", bit, value)

	switch bit {
	case 0:
		card.selected = value
		logger.Logf("horizon", "activate ROS = %v", card.selected)

	case 1:
		// lines 1 and 2 are crossed on the card so that page numbering
		// is consistent with RAMBO access
		if !card.ramboMode {
			card.setPageBit(0x0002, value)
		}

	case 2:
		if !card.ramboMode {
			card.setPageBit(0x0001, value)
		}

	case 3, 4, 5, 6, 7, 8, 9:
		card.setPageBit(0x0001<<(bit-1), value)

	case 14:
		// unused

	case 15:
		if card.useRAMBO {
			card.ramboMode = value
			logger.Logf("horizon", "RAMBO = %v", card.ramboMode)
		}

	default: // bits 10-13
		if bit != splitBit || card.split == SplitNone {
			if bit <= splitBit {
				card.setPageBit(0x0200<<(bit-10), value)
			}
		}
	}

	switch card.split {
	case SplitTI:
		// the drive is selected by which CRU base was addressed
		card.setPageBit(splitPageBit, base == card.cruPhoenix)
	case SplitGeneve:
		// the drive is selected by the bit number of this access
		card.setPageBit(splitPageBit, bit > 7)
	}
}

func (card *Ramdisk) setPageBit(pattern uint16, set bool) {
	if set {
		card.page |= pattern
	} else {
		card.page &^= pattern
	}
}

// Page returns the current value of the page-address register.
func (card *Ramdisk) Page() uint16 {
	return card.page
}

// Status is a snapshot of the card's runtime state, suitable for display
// or visualisation.
type Status struct {
	Size       Size
	Page       uint16
	Selected   bool
	RAMBO      bool
	HideSwitch bool
	Split      SplitMode
	CRUBaseA   uint16
	CRUBaseB   uint16
	GenmodFix  bool
	Expansion  bool
}

// Status returns a snapshot of the card's runtime state.
func (card *Ramdisk) Status() Status {
	return Status{
		Size:       card.size,
		Page:       card.page,
		Selected:   card.selected,
		RAMBO:      card.ramboMode,
		HideSwitch: card.hideswitch,
		Split:      card.split,
		CRUBaseA:   card.cruHorizon,
		CRUBaseB:   card.cruPhoenix,
		GenmodFix:  card.genmodFix,
		Expansion:  card.ram != nil,
	}
}
