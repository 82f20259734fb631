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

// Package monitor is an interactive, machine-language-monitor style harness
// for the Horizon card. It talks to the card through the PEB bus exactly as
// the console would: peeks and pokes are bus reads and writes, and the
// card's control bits are reached through CRU writes.
package monitor

import (
	"io"
	"os"

	"github.com/jetsetilly/horizon99/hardware/peb"
	"github.com/jetsetilly/horizon99/hardware/peb/horizon"
	"github.com/jetsetilly/horizon99/monitor/easyterm"
)

const prompt = "horizon > "

// Monitor is an interactive session on the PEB bus.
type Monitor struct {
	term easyterm.Terminal

	pb   *peb.PEB
	card *horizon.Ramdisk

	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(pb *peb.PEB, card *horizon.Ramdisk) (*Monitor, error) {
	mon := &Monitor{
		pb:   pb,
		card: card,
	}

	if err := mon.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	return mon, nil
}

// Run the monitor loop until the user quits or input reaches EOF.
func (mon *Monitor) Run() error {
	mon.term.CBreakMode()
	defer mon.term.CleanUp()

	mon.term.Print("Horizon ramdisk monitor. HELP for commands.\n")

	mon.running = true
	for mon.running {
		input, err := mon.readLine()
		if err != nil {
			if err == io.EOF {
				mon.term.Print("\n")
				return nil
			}
			return err
		}

		if err := mon.parseCommand(input); err != nil {
			mon.term.Print("error: %v\n", err)
		}
	}

	return nil
}

// readLine gathers a line of input in cbreak mode. A ctrl-c abandons the
// line; a ctrl-d on an empty line returns io.EOF.
func (mon *Monitor) readLine() (string, error) {
	mon.term.Print(prompt)

	line := make([]rune, 0, 40)

	for {
		r, err := mon.term.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			mon.term.Print("^C\n")
			return "", nil

		case easyterm.KeyEndOfFile:
			if len(line) == 0 {
				return "", io.EOF
			}

		case easyterm.KeyCarriageRet, '\n':
			mon.term.Print("\n")
			return string(line), nil

		case easyterm.KeyBackspace, easyterm.KeyDelBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
				mon.term.Print("\b \b")
			}

		default:
			if r >= ' ' && r < 127 {
				line = append(line, r)
				mon.term.Print("%c", r)
			}
		}
	}
}
