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

package peb_test

import (
	"testing"

	"github.com/jetsetilly/horizon99/hardware/peb"
	"github.com/jetsetilly/horizon99/test"
)

// stubCard decodes a single 8 KiB window.
type stubCard struct {
	id     string
	window uint32

	mem       [0x2000]uint8
	resets    int
	cruWrites int
}

func (c *stubCard) ID() string {
	return c.id
}

func (c *stubCard) Reset() {
	c.resets++
}

func (c *stubCard) Read(offset uint32) (uint8, bool) {
	if offset&0xe000 != c.window {
		return 0, false
	}
	return c.mem[offset&0x1fff], true
}

func (c *stubCard) Write(offset uint32, data uint8) {
	if offset&0xe000 == c.window {
		c.mem[offset&0x1fff] = data
	}
}

func (c *stubCard) CRUWrite(_ uint16, _ uint8) {
	c.cruWrites++
}

func TestBusDispatch(t *testing.T) {
	a := &stubCard{id: "a", window: 0x4000}
	b := &stubCard{id: "b", window: 0x6000}

	pb := peb.NewPEB()
	pb.Insert(a)
	pb.Insert(b)

	// each write reaches the card that decodes it
	pb.Write(0x4123, 0xaa)
	pb.Write(0x6123, 0xbb)

	data, ok := pb.Read(0x4123)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, data, 0xaa)

	data, ok = pb.Read(0x6123)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, data, 0xbb)

	// nothing decodes this offset
	_, ok = pb.Read(0x2000)
	test.ExpectedFailure(t, ok)
}

func TestBusFirstResponderWins(t *testing.T) {
	a := &stubCard{id: "a", window: 0x4000}
	b := &stubCard{id: "b", window: 0x4000}
	a.mem[0] = 0x01
	b.mem[0] = 0x02

	pb := peb.NewPEB()
	pb.Insert(a)
	pb.Insert(b)

	// both cards decode the offset; the first inserted drives the bus
	data, ok := pb.Read(0x4000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, data, 0x01)
}

func TestBusBroadcast(t *testing.T) {
	a := &stubCard{id: "a", window: 0x4000}
	b := &stubCard{id: "b", window: 0x6000}

	pb := peb.NewPEB()
	pb.Insert(a)
	pb.Insert(b)

	pb.Reset()
	test.Equate(t, a.resets, 1)
	test.Equate(t, b.resets, 1)

	// CRU writes go to every card; the cards decide what to do with them
	pb.CRUWrite(0x1200, 1)
	test.Equate(t, a.cruWrites, 1)
	test.Equate(t, b.cruWrites, 1)
}
