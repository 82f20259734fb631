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

// Package resources maps project files (preferences, NVRAM images) onto the
// host filesystem. The JoinPath() function should be used to get the full
// path of any resource.
//
// If a directory named ".horizon99" exists in the current working directory
// then the program runs "portable" and all resources live under that
// directory. Otherwise resources live under the user's OS-specific
// configuration directory.
package resources
