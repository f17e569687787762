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

// Package game implements the rules of the dice game: who plays, how a
// round is played, and how scores add up across rounds.
package game

import (
	"fmt"
	"strings"
)

const (
	MinPlayers = 1  // Smallest roster a session can be played with.
	MaxPlayers = 10 // Largest roster a session can be played with.
)

// Player represents one of the players seated at the table. Names need not
// be unique, so a Player is identified by its seat.
type Player struct {
	Seat int    // 1-based position in the turn order
	Name string // display name
}

// NewPlayer creates the Player sitting at the given 1-based seat. The name
// is trimmed of surrounding whitespace, and a blank name is replaced with
// the seat's default label.
func NewPlayer(seat int, name string) Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName(seat)
	}

	return Player{Seat: seat, Name: name}
}

// DefaultName returns the label used for a player who left their name blank.
func DefaultName(seat int) string {
	return fmt.Sprintf("Player %d", seat)
}

func (player Player) String() string {
	return player.Name
}

// Names returns the display names of the given players, in order.
func Names(players []Player) []string {
	names := make([]string, len(players))
	for i, player := range players {
		names[i] = player.Name
	}

	return names
}
