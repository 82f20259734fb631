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

// MaxSize is the capacity of a fully populated card.
const MaxSize = 0x1000000

// The persistent image of the card is the main store followed by the 8 KiB
// ROS. The main store part of the image is always the full fitted capacity,
// however much of it has actually been written to.

// NVRAMSize returns the size of the persistent image for this card.
func (card *Ramdisk) NVRAMSize() int {
	return card.size.Bytes() + ROSSize
}

// NVRAM returns the persistent image of the battery-backed stores. The 32K
// expansion is volatile and is not part of the image.
func (card *Ramdisk) NVRAM() []byte {
	img := make([]byte, card.NVRAMSize())
	copy(img, card.nvram)
	copy(img[card.size.Bytes():], card.ros)
	return img
}

// SetNVRAM restores the battery-backed stores from a persistent image. The
// last 8 KiB of the image is always taken to be the ROS; everything before
// it is main store content, zero padded if the image is smaller than the
// fitted capacity.
//
// An image too short to contain the ROS is treated as no image at all and
// both stores are zeroed. This is not an error: the card behaves as it
// would with a fresh battery.
func (card *Ramdisk) SetNVRAM(data []byte) {
	for i := range card.nvram {
		card.nvram[i] = 0
	}
	for i := range card.ros {
		card.ros[i] = 0
	}

	// an oversized image can only happen when the image was saved from a
	// larger card. the ROS is still the last 8 KiB of the image
	if len(data) > MaxSize+ROSSize {
		data = data[:MaxSize+ROSSize]
	}

	if len(data) < ROSSize {
		return
	}

	n := len(data) - ROSSize
	copy(card.nvram, data[:n])
	copy(card.ros, data[n:])
}
