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

// Package curated is the error type used throughout the project. A curated
// error keeps hold of the pattern string it was created with, meaning that
// errors can be compared against the pattern with the Is() and Has()
// functions without resorting to string comparison of the formatted message.
//
// Packages that want their errors to be identifiable declare the pattern as
// a package-level constant. For example:
//
//	const ShortImage = "nvram: image too short: %d bytes"
//
//	return curated.Errorf(ShortImage, len(data))
//
// and a caller can test for it:
//
//	if curated.Is(err, nvram.ShortImage) { ...
//
// Wrapped curated errors de-duplicate adjacent identical message parts when
// formatted, keeping deeply wrapped messages readable.
package curated
