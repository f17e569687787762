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
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dice/pkg/dice"
)

// Table is the part of the session a round talks to while it is being
// played: it waits for each player to roll and shows them what they got.
type Table interface {
	// Ready blocks until the given player asks to roll.
	Ready(player Player) error

	// Reveal shows the player the value they just rolled.
	Reveal(player Player, value int)
}

// Roll is a single player's roll in a round.
type Roll struct {
	Player Player
	Value  int
}

// RoundResult is the set of rolls made in one round, in play order.
// It is not modified after PlayRound returns it.
type RoundResult struct {
	number int
	rolls  []Roll
}

// NewRoundResult creates a RoundResult from already made rolls. Rolls are
// copied so that the result can't be changed through the given slice.
func NewRoundResult(number int, rolls ...Roll) RoundResult {
	return RoundResult{
		number: number,
		rolls:  append([]Roll(nil), rolls...),
	}
}

// PlayRound plays one round: every player, in order, gets ready, rolls the
// die once, and sees their roll before the next player goes.
func PlayRound(number int, players []Player, die dice.Die, src dice.Source, table Table) (RoundResult, error) {
	if len(players) == 0 {
		return RoundResult{}, ErrNoPlayers
	}

	rolls := make([]Roll, 0, len(players))
	for _, player := range players {
		if err := table.Ready(player); err != nil {
			return RoundResult{}, err
		}

		value := die.Roll(src)

		logrus.WithFields(logrus.Fields{
			"round":  number,
			"player": player.Name,
			"die":    die,
			"value":  value,
		}).Debug("Player rolled the die")

		table.Reveal(player, value)
		rolls = append(rolls, Roll{Player: player, Value: value})
	}

	return RoundResult{number: number, rolls: rolls}, nil
}

// Number returns the round's number, starting at 1.
func (result RoundResult) Number() int {
	return result.number
}

// Rolls returns a copy of the round's rolls in play order.
func (result RoundResult) Rolls() []Roll {
	return append([]Roll(nil), result.rolls...)
}

// Best returns the highest value rolled in the round, or 0 if the round
// has no rolls.
func (result RoundResult) Best() int {
	best := 0
	for _, roll := range result.rolls {
		best = max(best, roll.Value)
	}

	return best
}

// Winners returns every player who rolled the round's best value, in play
// order. More than one winner means the round was tied.
func (result RoundResult) Winners() []Player {
	best := result.Best()

	var winners []Player
	for _, roll := range result.rolls {
		if roll.Value == best {
			winners = append(winners, roll.Player)
		}
	}

	return winners
}

// IsTie reports whether more than one player rolled the best value.
func (result RoundResult) IsTie() bool {
	return len(result.Winners()) > 1
}
