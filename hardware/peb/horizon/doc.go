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

// Package horizon emulates the Horizon 4000 ramdisk card. The card carries
// up to 16 MiB of battery-backed SRAM, a separate battery-backed 8 KiB SRAM
// holding the ramdisk operating system (the ROS), and an optional 32 KiB of
// plain, unbuffered RAM.
//
// In the traditional addressing mode the main store is organised as 2 KiB
// pages. A page is selected through the CRU and appears in the top 2 KiB of
// the DSR window (0x5800 to 0x5fff); the ROS occupies the rest of the
// window (0x4000 to 0x57ff). Like any peripheral card, the DSR window is
// only active while CRU bit 0 of the card's base is set.
//
// The RAMBO mode gathers four consecutive pages into a single 8 KiB page
// that appears in the cartridge window (0x6000 to 0x7fff). The page number
// ordering in RAMBO mode follows the real card, where two of the CRU lines
// are crossed: RAMBO page n covers the traditional pages 4n, 4n+2, 4n+1,
// 4n+3 in that sequence. The crossed lines are part of the hardware and are
// reproduced here, not corrected.
//
// The card can also be split into two logical drives (the Phoenix
// extension). In TI mode each drive answers to its own CRU base. In Geneve
// mode there is one base and the drive is chosen by the bit number of the
// most recent CRU access: bits above 7 select the second drive.
//
// A physical hide switch disables all access to the ROS and main store
// without touching the card's other state. The 32 KiB expansion, when
// installed, ignores both the hide switch and the card select bit.
//
// The Genmod fix alters the window decoding for Genmod systems, where the
// extended address lines AMA/AMB/AMC must be decoded rather than ignored.
//
// The configuration program shipped with the real card crashes with more
// than 2 MiB fitted. That is a fault of the configuration program, not the
// card, so all four sizes up to 16 MiB are treated as equally valid here.
package horizon
