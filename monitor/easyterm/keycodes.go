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

package easyterm

// the keycodes the monitor input loop cares about.
const (
	KeyInterrupt    = 3   // ctrl-c
	KeyEndOfFile    = 4   // ctrl-d
	KeyTab          = 9
	KeyCarriageRet  = 13
	KeyEsc          = 27
	KeyBackspace    = 8
	KeyDelBackspace = 127
)
