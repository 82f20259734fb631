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

package monitor

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/horizon99/curated"
	"github.com/jetsetilly/horizon99/hardware/peb/nvram"
	"github.com/jetsetilly/horizon99/logger"
)

// Error patterns for the monitor package.
const (
	UnknownCommand = "monitor: unknown command: %v"
	BadArgument    = "monitor: bad argument: %v"
	MissingArg     = "monitor: not enough arguments for %v"
)

const helpText = `PEEK addr [len]        read bytes from the bus
POKE addr val [val...] write bytes to the bus
CRU base bit val       write a single CRU bit (bit 0-15, val 0 or 1)
STATE                  show the card state
RESET                  reset every card on the bus
SAVE [file]            save the card NVRAM image
LOAD [file]            load the card NVRAM image
VIZ [file]             write card state as graphviz dot (default horizon.dot)
LOG [n]                show the application log (last n entries)
HELP                   this text
QUIT                   leave the monitor
`

// bus offsets and CRU values are given in hex, with or without a leading
// "0x" or the TI-style ">".
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), ">")
	v, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, curated.Errorf(BadArgument, s)
	}
	return v, nil
}

func (mon *Monitor) parseCommand(input string) error {
	args := strings.Fields(input)
	if len(args) == 0 {
		return nil
	}

	command := strings.ToUpper(args[0])
	args = args[1:]

	switch command {
	case "PEEK":
		return mon.peek(args)
	case "POKE":
		return mon.poke(args)
	case "CRU":
		return mon.cru(args)
	case "STATE":
		mon.state()
	case "RESET":
		mon.pb.Reset()
	case "SAVE":
		if len(args) > 0 {
			return nvram.SaveFile(mon.card, args[0])
		}
		return nvram.Save(mon.card)
	case "LOAD":
		if len(args) > 0 {
			return nvram.LoadFile(mon.card, args[0])
		}
		return nvram.Load(mon.card)
	case "VIZ":
		return mon.viz(args)
	case "LOG":
		n := 10
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf(BadArgument, args[0])
			}
		}
		s := &strings.Builder{}
		logger.Tail(s, n)
		mon.term.Print("%s", s.String())
	case "HELP":
		mon.term.Print("%s", helpText)
	case "QUIT", "Q":
		mon.running = false
	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

const bytesPerLine = 8

func (mon *Monitor) peek(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(MissingArg, "PEEK")
	}

	addr, err := parseHex(args[0], 32)
	if err != nil {
		return err
	}

	length := uint64(1)
	if len(args) > 1 {
		length, err = parseHex(args[1], 16)
		if err != nil {
			return err
		}
	}

	s := &strings.Builder{}
	for i := uint64(0); i < length; i++ {
		if i%bytesPerLine == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(strconv.FormatUint(addr+i, 16))
			s.WriteString(": ")
		}
		if data, ok := mon.pb.Read(uint32(addr + i)); ok {
			hex := strconv.FormatUint(uint64(data), 16)
			if len(hex) == 1 {
				s.WriteString("0")
			}
			s.WriteString(hex)
			s.WriteString(" ")
		} else {
			// undriven bus
			s.WriteString("-- ")
		}
	}
	s.WriteString("\n")
	mon.term.Print("%s", s.String())

	return nil
}

func (mon *Monitor) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArg, "POKE")
	}

	addr, err := parseHex(args[0], 32)
	if err != nil {
		return err
	}

	for i, a := range args[1:] {
		data, err := parseHex(a, 8)
		if err != nil {
			return err
		}
		mon.pb.Write(uint32(addr+uint64(i)), uint8(data))
	}

	return nil
}

func (mon *Monitor) cru(args []string) error {
	if len(args) < 3 {
		return curated.Errorf(MissingArg, "CRU")
	}

	base, err := parseHex(args[0], 16)
	if err != nil {
		return err
	}

	bit, err := strconv.Atoi(args[1])
	if err != nil || bit < 0 || bit > 15 {
		return curated.Errorf(BadArgument, args[1])
	}

	val := args[2] != "0"

	// use the bus address form so that the write takes the same path as a
	// write from the console would
	var data uint8
	if val {
		data = 1
	}
	mon.pb.CRUWrite(uint16(base)|uint16(bit<<1), data)

	return nil
}

func (mon *Monitor) state() {
	st := mon.card.Status()
	mon.term.Print("%s\n", mon.card.String())
	mon.term.Print("  cru base %04x", st.CRUBaseA)
	if st.CRUBaseB != 0 {
		mon.term.Print(" / %04x", st.CRUBaseB)
	}
	mon.term.Print("\n  split %s, genmod %v, 32k expansion %v\n", st.Split, st.GenmodFix, st.Expansion)
}

func (mon *Monitor) viz(args []string) error {
	fn := "horizon.dot"
	if len(args) > 0 {
		fn = args[0]
	}

	st := mon.card.Status()
	b := &bytes.Buffer{}
	memviz.Map(b, &st)

	if err := os.WriteFile(fn, b.Bytes(), 0600); err != nil {
		return err
	}

	mon.term.Print("card state written to %s\n", fn)
	return nil
}
