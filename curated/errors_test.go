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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/horizon99/curated"
	"github.com/jetsetilly/horizon99/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, "flibble")
	test.Equate(t, err.Error(), "test: flibble")

	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, curated.Is(err, testPattern))
	test.ExpectedFailure(t, curated.Is(err, otherPattern))

	// plain errors are not curated
	plain := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(plain))
	test.ExpectedFailure(t, curated.Is(plain, testPattern))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "flibble")
	outer := curated.Errorf(otherPattern, inner)

	test.ExpectedSuccess(t, curated.Has(outer, testPattern))
	test.ExpectedSuccess(t, curated.Has(outer, otherPattern))
	test.ExpectedFailure(t, curated.Is(outer, testPattern))
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("horizon: %v", "bad thing")
	outer := curated.Errorf("horizon: %v", inner)

	// adjacent duplicate message parts are removed on formatting
	test.Equate(t, outer.Error(), "horizon: bad thing")
}
