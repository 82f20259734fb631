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

// Package prefs is the project's set-and-forget settings system. A prefs
// value (Bool, Int or String) is a live value that can be registered with a
// Disk instance, giving it a presence in a preferences file on the host
// filesystem.
//
// Prefs values can be used without a Disk. This is how the Horizon card
// models its DIP switches: the switches are prefs values first and
// persistent settings second.
//
// Multiple Disk instances can share a preferences file. Saving merges with
// whatever entries are already in the file, so one instance does not clobber
// the keys owned by another.
package prefs
