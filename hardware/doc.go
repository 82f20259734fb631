// Package hardware is the base package for the emulated hardware. The
// sub-packages model the TI-99/4A Peripheral Expansion Box and the cards
// inserted into it.
//
// The PEB type in the peb package is the root of the emulation. Cards are
// inserted into the box and reached through bus reads, writes and CRU bit
// writes, exactly as the console reaches them.
package hardware
