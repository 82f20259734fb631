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

// Package nvram persists the battery-backed storage of peripheral cards
// across sessions. Cards expose their persistent image as a flat byte
// slice; this package deals with the files.
package nvram

import (
	"os"

	"github.com/jetsetilly/horizon99/curated"
	"github.com/jetsetilly/horizon99/logger"
	"github.com/jetsetilly/horizon99/resources"
)

// Device is any card with battery-backed storage.
type Device interface {
	// ID returns the name the image file is stored under.
	ID() string

	// NVRAM returns the persistent image of the device.
	NVRAM() []byte

	// SetNVRAM restores the device from a persistent image. Implementations
	// must accept an image of any length.
	SetNVRAM(data []byte)
}

// Error patterns for the nvram package.
const (
	SaveFailed = "nvram: save: %v"
	LoadFailed = "nvram: load: %v"
)

// the sub-directory of the resources path used for image files.
const nvramDir = "nvram"

func imagePath(dev Device) (string, error) {
	return resources.JoinPath(nvramDir, dev.ID()+".nv")
}

// Load restores the device from its image file in the resources path. A
// missing image file is not an error; the device keeps its default
// contents.
func Load(dev Device) error {
	fn, err := imagePath(dev)
	if err != nil {
		return curated.Errorf(LoadFailed, err)
	}
	return LoadFile(dev, fn)
}

// LoadFile restores the device from the named image file.
func LoadFile(dev Device, fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Logf("nvram", "no image for %s", dev.ID())
			return nil
		}
		return curated.Errorf(LoadFailed, err)
	}

	dev.SetNVRAM(data)
	logger.Logf("nvram", "%s restored from %s (%d bytes)", dev.ID(), fn, len(data))

	return nil
}

// Save writes the device's image file to the resources path.
func Save(dev Device) error {
	fn, err := imagePath(dev)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}
	return SaveFile(dev, fn)
}

// SaveFile writes the device's image to the named file.
func SaveFile(dev Device, fn string) error {
	img := dev.NVRAM()
	if err := os.WriteFile(fn, img, 0600); err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	logger.Logf("nvram", "%s saved to %s (%d bytes)", dev.ID(), fn, len(img))

	return nil
}
