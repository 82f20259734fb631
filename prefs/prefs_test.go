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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/horizon99/prefs"
	"github.com/jetsetilly/horizon99/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, dsk.Add("testB", &w))

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, w.Set("foo"))

	test.ExpectedSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedSuccess(t, dsk.Add("numberB", &w))

	test.ExpectedSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectedSuccess(t, w.Set("99"))

	test.ExpectedSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectedFailure(t, v.Set("---"))
	test.ExpectedFailure(t, v.Set(1.0))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedSuccess(t, v.Set(42))
	test.ExpectedSuccess(t, dsk.Save())

	// new disk instance sharing the same file
	dsk2, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var w prefs.Int
	test.ExpectedSuccess(t, dsk2.Add("number", &w))
	test.ExpectedSuccess(t, dsk2.Load(false))
	test.Equate(t, w.Get().(int), 42)

	// a missing file is an error unless ignoreMissing is set
	dsk3, err := prefs.NewDisk(filepath.Join(t.TempDir(), "no-such-file"))
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, dsk3.Load(false))
	test.ExpectedSuccess(t, dsk3.Load(true))
}

// write a bool and then a string from a different Disk instance. the second
// save must not clobber the results of the first.
func TestMerge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, dsk.Save())

	dsk2, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var s prefs.String
	test.ExpectedSuccess(t, dsk2.Add("foo", &s))
	test.ExpectedSuccess(t, s.Set("bar"))
	test.ExpectedSuccess(t, dsk2.Save())

	cmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))

	err = dsk.Add("test", &w)
	test.ExpectedFailure(t, err)
}

func TestHooks(t *testing.T) {
	var v prefs.Bool

	post := false
	v.SetHookPost(func(val prefs.Value) error {
		post = val.(bool)
		return nil
	})

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, post)
}
