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
	"testing"

	"github.com/jetsetilly/horizon99/test"
)

func newWhiteboxCard(t *testing.T, setup func(*Preferences)) *Ramdisk {
	t.Helper()

	prf := &Preferences{}
	prf.SetDefaults()
	if setup != nil {
		setup(prf)
	}

	return NewRamdisk(prf)
}

func TestDecodeTable(t *testing.T) {
	card := newWhiteboxCard(t, func(prf *Preferences) {
		prf.Expansion.Set(true)
	})

	card.selected = true

	tests := []struct {
		offset uint32
		page   uint16
		rambo  bool
		region region
		index  uint32
	}{
		// expansion windows, each its own 8K of the store
		{offset: 0x2000, region: regionRAM, index: 0x0000},
		{offset: 0x3fff, region: regionRAM, index: 0x1fff},
		{offset: 0xa000, region: regionRAM, index: 0x2000},
		{offset: 0xcabc, region: regionRAM, index: 0x4abc},
		{offset: 0xffff, region: regionRAM, index: 0x7fff},

		// DSR window: ROS below the overlay, main store within it
		{offset: 0x4000, region: regionROS, index: 0x0000},
		{offset: 0x57ff, region: regionROS, index: 0x17ff},
		{offset: 0x5800, region: regionMain, index: 0x0000},
		{offset: 0x5fff, region: regionMain, index: 0x07ff},
		{offset: 0x5800, page: 0x0005, region: regionMain, index: 0x2800},
		{offset: 0x5a10, page: 0x0005, region: regionMain, index: 0x2a10},

		// outside every window
		{offset: 0x0000, region: regionNone},
		{offset: 0x6000, region: regionNone},
		{offset: 0x8123, region: regionNone},

		// RAMBO: the whole DSR window is ROS and the cartridge window is
		// an 8K block of the main store, on a four-page boundary
		{offset: 0x5800, rambo: true, region: regionROS, index: 0x1800},
		{offset: 0x6000, rambo: true, region: regionMain, index: 0x0000},
		{offset: 0x7fff, rambo: true, region: regionMain, index: 0x1fff},
		{offset: 0x6000, page: 0x0007, rambo: true, region: regionMain, index: 0x2000},
		{offset: 0x7123, page: 0x0008, rambo: true, region: regionMain, index: 0x5123},
	}

	for _, tc := range tests {
		card.page = tc.page
		card.ramboMode = tc.rambo

		r, idx := card.decode(tc.offset)
		test.Equate(t, int(r), int(tc.region))
		if tc.region != regionNone {
			test.Equate(t, idx, tc.index)
		}
	}
}

func TestDecodeGenmod(t *testing.T) {
	card := newWhiteboxCard(t, func(prf *Preferences) {
		prf.GenmodFix.Set(true)
	})
	card.selected = true

	r, idx := card.decode(0x74000)
	test.Equate(t, int(r), int(regionROS))
	test.Equate(t, idx, 0x0000)

	r, idx = card.decode(0x75801)
	test.Equate(t, int(r), int(regionMain))
	test.Equate(t, idx, 0x0001)

	// the unmapped 16-bit aliases
	r, _ = card.decode(0x4000)
	test.Equate(t, int(r), int(regionNone))
	r, _ = card.decode(0x5800)
	test.Equate(t, int(r), int(regionNone))

	card.ramboMode = true
	r, idx = card.decode(0x76100)
	test.Equate(t, int(r), int(regionMain))
	test.Equate(t, idx, 0x0100)
	r, _ = card.decode(0x6100)
	test.Equate(t, int(r), int(regionNone))
}

func TestNVRAMImageLayout(t *testing.T) {
	card := newWhiteboxCard(t, nil)

	card.nvram[0] = 0x11
	card.nvram[len(card.nvram)-1] = 0x22
	card.ros[0] = 0x33
	card.ros[ROSSize-1] = 0x44

	img := card.NVRAM()
	test.Equate(t, len(img), card.size.Bytes()+ROSSize)
	test.Equate(t, img[0], 0x11)
	test.Equate(t, img[card.size.Bytes()-1], 0x22)
	test.Equate(t, img[card.size.Bytes()], 0x33)
	test.Equate(t, img[len(img)-1], 0x44)
}

func TestSetNVRAMRestoresBothStores(t *testing.T) {
	card := newWhiteboxCard(t, nil)

	img := make([]byte, card.NVRAMSize())
	img[5] = 0xaa
	img[card.size.Bytes()+7] = 0xbb
	card.SetNVRAM(img)

	test.Equate(t, card.nvram[5], 0xaa)
	test.Equate(t, card.ros[7], 0xbb)
}

func TestSetNVRAMShortImage(t *testing.T) {
	card := newWhiteboxCard(t, nil)
	card.nvram[0] = 0xff
	card.ros[0] = 0xff

	// an image from a smaller card: the ROS is still the last 8 KiB and
	// the main store is zero padded beyond the image
	short := make([]byte, 0x1000+ROSSize)
	short[0] = 0x12
	short[0x1000] = 0x34
	card.SetNVRAM(short)

	test.Equate(t, card.nvram[0], 0x12)
	test.Equate(t, card.nvram[0x1000], 0x00)
	test.Equate(t, card.ros[0], 0x34)
}

func TestSetNVRAMTooShortForROS(t *testing.T) {
	card := newWhiteboxCard(t, nil)
	card.nvram[0] = 0xff
	card.ros[0] = 0xff

	// a fresh battery: no usable image means both stores are wiped
	card.SetNVRAM(make([]byte, ROSSize-1))
	test.Equate(t, card.nvram[0], 0x00)
	test.Equate(t, card.ros[0], 0x00)
}

func TestNVRAMRoundTrip(t *testing.T) {
	card := newWhiteboxCard(t, nil)

	card.selected = true
	card.page = 0x0123
	card.Write(0x5a00, 0x56)
	card.Write(0x4100, 0x78)

	img := card.NVRAM()

	fresh := newWhiteboxCard(t, nil)
	fresh.SetNVRAM(img)

	test.Equate(t, fresh.nvram[(0x0123<<pageShift)|0x0200], 0x56)
	test.Equate(t, fresh.ros[0x0100], 0x78)
}
