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
	"github.com/jetsetilly/horizon99/prefs"
	"github.com/jetsetilly/horizon99/resources"
)

// Size is the capacity class of the main store.
type Size int

// List of valid Size values. The value doubles as the size exponent: the
// capacity in bytes is 2 MiB shifted left by the Size.
const (
	Size2M Size = iota
	Size4M
	Size8M
	Size16M
)

// Bytes returns the capacity of the main store in bytes.
func (s Size) Bytes() int {
	return 0x200000 << s
}

func (s Size) String() string {
	switch s {
	case Size2M:
		return "2 MiB"
	case Size4M:
		return "4 MiB"
	case Size8M:
		return "8 MiB"
	case Size16M:
		return "16 MiB"
	}
	return "unknown size"
}

// SplitMode says whether and how the main store is partitioned into two
// logical drives (the Phoenix extension).
type SplitMode int

// List of valid SplitMode values.
const (
	// no partitioning. the whole store is one drive.
	SplitNone SplitMode = iota

	// TI mode. two CRU bases, one per drive.
	SplitTI

	// Geneve mode. one CRU base; the drive is selected by the bit number
	// of the most recent CRU access.
	SplitGeneve
)

func (m SplitMode) String() string {
	switch m {
	case SplitNone:
		return "off"
	case SplitTI:
		return "TI mode"
	case SplitGeneve:
		return "Geneve mode"
	}
	return "unknown split mode"
}

// Preferences models the card's DIP switches and jumpers. All values are
// read at card reset; Size and Expansion additionally decide the storage
// allocation when the card is built.
//
// The Hide preference is special: it is wired to the live card with a
// post-set hook, mirroring the physical switch that can be flipped while
// the machine is powered on.
type Preferences struct {
	dsk *prefs.Disk

	// CRU base of the card. a value of zero disables the base entirely.
	CRUBaseA prefs.Int

	// CRU base of the second (Phoenix) drive. used in TI split mode only.
	// zero disables it.
	CRUBaseB prefs.Int

	// one of the SplitMode values
	Split prefs.Int

	// capacity class of the main store. one of the Size values
	Size prefs.Int

	// whether the 32 KiB expansion is fitted
	Expansion prefs.Bool

	// whether the RAMBO jumper is fitted
	RAMBO prefs.Bool

	// position of the hide switch
	Hide prefs.Bool

	// decode the extended address lines (for Genmod systems)
	GenmodFix prefs.Bool
}

const prefsFile = "horizon99.prefs"

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file if it
// exists.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("horizon.crubase", &p.CRUBaseA); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.crubase2", &p.CRUBaseB); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.split", &p.Split); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.size", &p.Size); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.expansion", &p.Expansion); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.rambo", &p.RAMBO); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.hide", &p.Hide); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("horizon.genmod", &p.GenmodFix); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults returns all switches to their factory positions.
func (p *Preferences) SetDefaults() {
	p.CRUBaseA.Set(0x1200)
	p.CRUBaseB.Set(0)
	p.Split.Set(int(SplitNone))
	p.Size.Set(int(Size2M))
	p.Expansion.Set(false)
	p.RAMBO.Set(true)
	p.Hide.Set(false)
	p.GenmodFix.Set(false)
}

// Save current switch positions to the preferences file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
