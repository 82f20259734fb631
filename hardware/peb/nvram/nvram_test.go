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

package nvram_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/horizon99/hardware/peb/nvram"
	"github.com/jetsetilly/horizon99/test"
)

type stubDevice struct {
	img []byte
}

func (dev *stubDevice) ID() string {
	return "stub"
}

func (dev *stubDevice) NVRAM() []byte {
	return dev.img
}

func (dev *stubDevice) SetNVRAM(data []byte) {
	dev.img = append([]byte(nil), data...)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stub.nv")

	dev := &stubDevice{img: []byte{0x01, 0x02, 0x03, 0x04}}
	err := nvram.SaveFile(dev, fn)
	test.ExpectedSuccess(t, err == nil)

	restored := &stubDevice{}
	err = nvram.LoadFile(restored, fn)
	test.ExpectedSuccess(t, err == nil)

	test.Equate(t, len(restored.img), 4)
	for i := range restored.img {
		test.Equate(t, restored.img[i], int(dev.img[i]))
	}
}

func TestLoadMissingFile(t *testing.T) {
	dev := &stubDevice{img: []byte{0xff}}

	// a missing image file leaves the device untouched
	err := nvram.LoadFile(dev, filepath.Join(t.TempDir(), "no-such.nv"))
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, len(dev.img), 1)
	test.Equate(t, dev.img[0], 0xff)
}

func TestSaveToBadPath(t *testing.T) {
	dev := &stubDevice{img: []byte{0x01}}

	err := nvram.SaveFile(dev, filepath.Join(t.TempDir(), "missing", "dir", "stub.nv"))
	test.ExpectedFailure(t, err == nil)
}
