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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/horizon99/hardware/peb"
	"github.com/jetsetilly/horizon99/hardware/peb/horizon"
	"github.com/jetsetilly/horizon99/hardware/peb/nvram"
	"github.com/jetsetilly/horizon99/logger"
	"github.com/jetsetilly/horizon99/monitor"
	"github.com/jetsetilly/horizon99/statsview"
	"github.com/jetsetilly/horizon99/version"
)

func main() {
	echoLog := flag.Bool("log", false, "echo log entries to stderr")
	useStatsview := flag.Bool("statsview", false, "run stats server (requires the statsview build tag)")
	showVersion := flag.Bool("version", false, "print version and quit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("horizon99 (%s)\n", version.String())
		return
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *useStatsview {
		statsview.Launch(os.Stdout)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func run() error {
	prf, err := horizon.NewPreferences()
	if err != nil {
		return err
	}

	card := horizon.NewRamdisk(prf)

	pb := peb.NewPEB()
	pb.Insert(card)

	if err := nvram.Load(card); err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(pb, card)
	if err != nil {
		return err
	}

	if err := mon.Run(); err != nil {
		return err
	}

	// battery-backed storage survives the session
	if err := nvram.Save(card); err != nil {
		return err
	}

	return prf.Save()
}
