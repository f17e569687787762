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

// Package session runs a game of dice from setup to the final podium.
package session

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dice/pkg/dice"
	"laptudirm.com/x/dice/pkg/display"
	"laptudirm.com/x/dice/pkg/game"
	"laptudirm.com/x/dice/pkg/prompt"
)

// Config contains everything a Session needs from the outside world.
type Config struct {
	In  io.Reader // answers from the players
	Out io.Writer // the game's screens

	Driver display.Driver // nil means display.Headless
	Source dice.Source    // randomness for the rolls
}

// Session is a single game, from setup until the players stop playing.
// It is not safe for concurrent use.
type Session struct {
	Die     dice.Die
	Players []game.Player
	Ledger  *game.Ledger

	// Round is the number of the current round. It is 1 once the game has
	// been set up, and grows by one for every round played after that.
	Round int

	state State
	last  game.RoundResult

	prompter *prompt.Prompter
	view     *display.Renderer
	driver   display.Driver
	source   dice.Source
}

// New creates a Session which hasn't been set up yet.
func New(config Config) *Session {
	driver := config.Driver
	if driver == nil {
		driver = display.Headless{}
	}

	return &Session{
		state:    Configuring,
		prompter: prompt.New(config.In, config.Out),
		view:     display.NewRenderer(config.Out),
		driver:   driver,
		source:   config.Source,
	}
}

// State returns the step the session is currently at.
func (session *Session) State() State {
	return session.state
}

// Last returns the result of the most recently played round.
func (session *Session) Last() game.RoundResult {
	return session.last
}

// Run plays the session until the players decide to stop.
func (session *Session) Run() error {
	for session.state != Finished {
		if err := session.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Step runs the session's current step and moves it to the next one.
// Stepping a Finished session does nothing.
func (session *Session) Step() error {
	var next State

	switch session.state {
	case Configuring:
		if err := session.configure(); err != nil {
			return fmt.Errorf("configure session: %w", err)
		}
		next = PlayingRound

	case PlayingRound:
		if err := session.playRound(); err != nil {
			return fmt.Errorf("play round %d: %w", session.Round, err)
		}
		next = ShowingSummary

	case ShowingSummary:
		session.showSummary()
		next = AskingContinue

	case AskingContinue:
		if session.askContinue() {
			session.Round++
			next = PlayingRound
		} else {
			session.finish()
			next = Finished
		}

	case Finished:
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"from":  session.state,
		"to":    next,
		"round": session.Round,
	}).Trace("Session changed state")

	session.state = next
	return nil
}

func (session *Session) configure() error {
	session.driver.Clear()
	session.view.Banner()
	session.view.Settings()

	faces, err := session.prompter.Int(
		"\n    🎲 How many faces should the die have? (e.g. 6, 12, 20): ",
		dice.MinFaces, dice.MaxFaces,
	)
	if err != nil {
		return err
	}

	if session.Die, err = dice.NewDie(faces); err != nil {
		return err
	}

	count, err := session.prompter.Int(
		fmt.Sprintf("    👥 How many players? (%d-%d): ", game.MinPlayers, game.MaxPlayers),
		game.MinPlayers, game.MaxPlayers,
	)
	if err != nil {
		return err
	}

	session.view.Roster()

	session.Players = make([]game.Player, 0, count)
	for seat := 1; seat <= count; seat++ {
		name, err := session.prompter.Text(fmt.Sprintf("    Player %d name: ", seat))
		if err != nil {
			return err
		}

		session.Players = append(session.Players, game.NewPlayer(seat, name))
	}

	if session.Ledger, err = game.NewLedger(session.Players); err != nil {
		return err
	}

	session.Round = 1

	logrus.WithFields(logrus.Fields{
		"die":     session.Die,
		"players": game.Names(session.Players),
	}).Debug("Session configured")

	return nil
}

func (session *Session) playRound() error {
	session.driver.Clear()
	session.view.Banner()
	session.view.RoundHeader(session.Die, session.Round)

	result, err := game.PlayRound(session.Round, session.Players, session.Die, session.source, table{session})
	if err != nil {
		return err
	}

	if err := session.Ledger.Record(result); err != nil {
		return err
	}

	session.last = result
	return nil
}

func (session *Session) showSummary() {
	session.view.RoundSummary(session.last)

	if session.Round > 1 {
		session.view.Standings(session.Ledger.Standings())
	}
}

func (session *Session) askContinue() bool {
	session.view.ContinueRule()
	return session.prompter.Confirm("    🔄 Play another round? (Y/N): ")
}

func (session *Session) finish() {
	session.driver.Clear()
	session.view.Banner()
	session.view.Podium(session.Round, session.Ledger.Standings())
	session.view.Farewell()
}

// table lets a round talk to the players through the session's console.
type table struct {
	*Session
}

func (table table) Ready(player game.Player) error {
	return table.prompter.Acknowledge(fmt.Sprintf("\n    👉 %s, press ENTER to roll the die...", player.Name))
}

func (table table) Reveal(player game.Player, value int) {
	table.driver.Animate()
	table.view.Roll(player, table.Die, value)
}
