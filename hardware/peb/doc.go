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

// Package peb models the Peripheral Expansion Box bus as seen by the cards
// that plug into it. Cards implement the Card interface and are inserted
// into a PEB instance, which fans out the three bus operations: memory
// read, memory write and CRU bit write.
//
// Memory offsets are passed as uint32 values. The low 16 bits are the
// console address bus. Bits 16 to 18 carry the extended address lines
// (AMA/AMB/AMC) found on Geneve-based systems; a stock console drives them
// high. Cards that do not decode the extended lines simply mask them away,
// which is exactly the behaviour the Genmod fix on the Horizon card exists
// to correct.
//
// A memory read on the real bus leaves the data lines floating when no card
// responds. This is modelled with the familiar comma-ok idiom: the second
// return value of Read() is false when no card has driven the bus.
//
// CRU bit writes use the bus address form: the base of the target card in
// bits 8 to 15 and the bit number in bits 1 to 4.
package peb
