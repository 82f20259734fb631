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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/horizon99/curated"
)

// WarningBoilerPlate is written to the top of the preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value on each line of the
// preferences file.
const keySep = " :: "

// Error patterns for the prefs package.
const (
	NoPrefsFile   = "prefs: no such file: %v"
	DuplicateKey  = "prefs: duplicate key: %v"
	InvalidKey    = "prefs: invalid key: %v"
	FileCorrupted = "prefs: file corrupt: %v"
)

// Disk represents the presence of prefs values in a preferences file on the
// host filesystem.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the location of the preferences file. The file does not
// need to exist yet.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add the prefs value to the Disk under the supplied key.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return curated.Errorf(InvalidKey, key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p
	return nil
}

// readFile returns the key/value pairs currently in the preferences file.
// Lines that do not look like entries (the boilerplate) are skipped.
func (dsk *Disk) readFile() (map[string]string, error) {
	onDisk := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return onDisk, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return onDisk, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if !strings.Contains(s, keySep) {
			continue
		}
		p := strings.SplitN(s, keySep, 2)
		onDisk[p[0]] = p[1]
	}

	if err := scanner.Err(); err != nil {
		return onDisk, curated.Errorf(FileCorrupted, err)
	}

	return onDisk, nil
}

// Load prefs values from the preferences file. Keys in the file that have
// not been Add()ed to this Disk instance are left alone.
//
// If ignoreMissing is true then a missing preferences file is not an error;
// the registered prefs values simply keep their current values.
func (dsk *Disk) Load(ignoreMissing bool) error {
	onDisk, err := dsk.readFile()
	if err != nil {
		if ignoreMissing && curated.Is(err, NoPrefsFile) {
			return nil
		}
		return err
	}

	for k, v := range onDisk {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Save the registered prefs values to the preferences file. Entries already
// in the file that belong to other Disk instances are preserved.
func (dsk *Disk) Save() error {
	// merge: on-disk entries first, then overwrite with our own
	onDisk, err := dsk.readFile()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		onDisk[k] = p.String()
	}

	keys := make([]string, 0, len(onDisk))
	for k := range onDisk {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, onDisk[k]))
	}

	return os.WriteFile(dsk.path, []byte(s.String()), 0600)
}

// String returns the path of the preferences file.
func (dsk *Disk) String() string {
	return dsk.path
}
