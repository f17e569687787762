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

package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoPlayers is returned when a game is started without any players.
var ErrNoPlayers = errors.New("game needs at least one player")

// ErrRosterMismatch is returned when a round's rolls don't belong to
// exactly the players a ledger keeps score for.
var ErrRosterMismatch = errors.New("round does not match the ledger's players")

// Ledger keeps the running score of every player across the rounds of a
// session. Totals start at zero and only ever grow through Record.
type Ledger struct {
	players []Player
	totals  []int // indexed by seat-1
}

// NewLedger creates a Ledger for the given players. Players must sit at
// seats 1 to len(players), in order.
func NewLedger(players []Player) (*Ledger, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	for i, player := range players {
		if player.Seat != i+1 {
			return nil, fmt.Errorf("new ledger: %s sits at seat %d, want %d", player.Name, player.Seat, i+1)
		}
	}

	return &Ledger{
		players: append([]Player(nil), players...),
		totals:  make([]int, len(players)),
	}, nil
}

// Record adds every roll of the given round to its player's total. The
// round must contain exactly one roll for every player of the ledger,
// otherwise ErrRosterMismatch is returned and no total is changed.
func (ledger *Ledger) Record(result RoundResult) error {
	rolls := result.Rolls()
	if len(rolls) != len(ledger.players) {
		return fmt.Errorf("record round %d: %d rolls for %d players: %w",
			result.Number(), len(rolls), len(ledger.players), ErrRosterMismatch)
	}

	seen := make([]bool, len(ledger.players))
	for _, roll := range rolls {
		seat := roll.Player.Seat
		if seat < 1 || seat > len(ledger.players) || seen[seat-1] {
			return fmt.Errorf("record round %d: seat %d: %w", result.Number(), seat, ErrRosterMismatch)
		}

		seen[seat-1] = true
	}

	for _, roll := range rolls {
		ledger.totals[roll.Player.Seat-1] += roll.Value
	}

	return nil
}

// Players returns the players the ledger keeps score for, in seat order.
func (ledger *Ledger) Players() []Player {
	return append([]Player(nil), ledger.players...)
}

// Total returns the running total of the given player. Players who are not
// part of the ledger have no total and report false.
func (ledger *Ledger) Total(player Player) (int, bool) {
	if player.Seat < 1 || player.Seat > len(ledger.totals) {
		return 0, false
	}

	return ledger.totals[player.Seat-1], true
}

// Standing is a player's place in the ledger.
type Standing struct {
	Player Player
	Total  int

	// Rank is the player's competition rank: players with equal totals
	// share a rank and the next rank skips accordingly (1, 1, 3, ...).
	Rank int
}

// Standings returns every player of the ledger in descending order of
// their totals. Players with equal totals keep their seat order.
func (ledger *Ledger) Standings() []Standing {
	standings := make([]Standing, len(ledger.players))
	for i, player := range ledger.players {
		standings[i] = Standing{Player: player, Total: ledger.totals[i]}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})

	for i := range standings {
		if i > 0 && standings[i].Total == standings[i-1].Total {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}

	return standings
}

// Leader returns the first player of the standings, the session's overall
// winner, and false if the ledger has no players.
func (ledger *Ledger) Leader() (Standing, bool) {
	standings := ledger.Standings()
	if len(standings) == 0 {
		return Standing{}, false
	}

	return standings[0], true
}
