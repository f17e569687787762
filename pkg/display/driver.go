// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package display renders the dice game on a text console.
//
// Everything which depends on the terminal the game is played in, like
// clearing the screen or animating a roll, goes through a Driver so that
// the game can also be played, and tested, without a terminal.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// Driver is the terminal dependent part of the display.
type Driver interface {
	// Clear wipes the screen so the next round starts on a fresh page.
	Clear()

	// Animate plays the rolling animation, blocking until it is over.
	Animate()
}

// RollingFrames are the frames of the rolling animation.
var RollingFrames = []string{"🎲", "🎯", "✨", "💫"}

// TerminalConfig configures a Terminal driver.
type TerminalConfig struct {
	Clear   bool          // Clear the screen between rounds.
	Animate bool          // Play the rolling animation.
	Delay   time.Duration // Time each frame of the animation is shown for.
	Spins   int           // Number of times the animation cycles its frames.
}

// Terminal is a Driver for ANSI compatible terminals.
type Terminal struct {
	out    io.Writer
	config TerminalConfig
}

// NewTerminal creates a Terminal driver which writes to out.
func NewTerminal(out io.Writer, config TerminalConfig) *Terminal {
	return &Terminal{out: out, config: config}
}

// Clear moves the cursor home and erases the whole screen.
func (terminal *Terminal) Clear() {
	if terminal.config.Clear {
		fmt.Fprint(terminal.out, "\x1b[H\x1b[2J")
	}
}

// Animate shows a spinner cycling through the RollingFrames, and erases
// it once the animation is over.
func (terminal *Terminal) Animate() {
	if !terminal.config.Animate || terminal.config.Spins <= 0 || terminal.config.Delay <= 0 {
		return
	}

	s := spinner.New(RollingFrames, terminal.config.Delay, spinner.WithWriter(terminal.out))
	s.Prefix = "\n    Rolling the die "

	duration := terminal.config.Delay * time.Duration(len(RollingFrames)*terminal.config.Spins)
	logrus.WithField("duration", duration).Trace("Animating roll")

	s.Start()
	time.Sleep(duration)
	s.Stop()
}

// Headless is a Driver which neither clears the screen nor animates.
type Headless struct{}

func (Headless) Clear()   {}
func (Headless) Animate() {}
