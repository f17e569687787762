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

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"

	"laptudirm.com/x/dice/pkg/dice"
	"laptudirm.com/x/dice/pkg/game"
)

const margin = "    "

var banner = heredoc.Doc(`
	╔═══════════════════════════════════════╗
	║            🎲  DICE GAME  🎲            ║
	╚═══════════════════════════════════════╝
`)

// Markers shown next to players in the round summary and on the podium.
const (
	WinnerMarker = "🏆"
	NoMarker     = "  "
)

// Medals for the first three ranks of the podium.
var Medals = [...]string{1: "🥇", 2: "🥈", 3: "🥉"}

var (
	highlight = color.New(color.FgGreen, color.Bold)
	heading   = color.New(color.FgCyan, color.Bold)
)

// Renderer writes the game's screens to an output. It makes no decisions
// about the game, it only shows what it is given.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (renderer *Renderer) println(a ...any) {
	fmt.Fprintln(renderer.out, a...)
}

func (renderer *Renderer) printf(format string, a ...any) {
	fmt.Fprintf(renderer.out, format, a...)
}

func rule(char string, n int) string {
	return margin + strings.Repeat(char, n)
}

// Banner shows the game's title.
func (renderer *Renderer) Banner() {
	renderer.println()
	for _, line := range strings.Split(strings.Trim(banner, "\n"), "\n") {
		renderer.println(margin + line)
	}
	renderer.println()
}

// Settings shows the heading of the game's setup questions.
func (renderer *Renderer) Settings() {
	heading.Fprintln(renderer.out, margin+"📋 GAME SETTINGS")
	renderer.println(rule("─", 25))
}

// Roster shows the heading of the player name questions.
func (renderer *Renderer) Roster() {
	renderer.printf("\n%s📝 Enter the players' names:\n", margin)
}

// RoundHeader introduces a new round.
func (renderer *Renderer) RoundHeader(die dice.Die, round int) {
	renderer.printf("%s🎮 Playing with a %d-sided die\n", margin, die.Faces)
	renderer.printf("%s📍 Round: %d\n", margin, round)
	renderer.println(rule("═", 35))
}

// Roll shows the value a player rolled, along with the die's face.
func (renderer *Renderer) Roll(player game.Player, die dice.Die, value int) {
	renderer.printf("\n%s%s rolled the die!\n\n", margin, player.Name)
	for _, line := range Face(die, value) {
		renderer.println(margin + margin + line)
	}
	renderer.printf("\n%s🎯 Result: %d\n", margin, value)
	renderer.println(rule("─", 25))
}

// RoundSummary shows every roll of a round, marking the round's winners.
func (renderer *Renderer) RoundSummary(result game.RoundResult) {
	best := result.Best()

	renderer.printf("\n%s╔═══════════════════════════════════╗\n", margin)
	renderer.printf("%s║      📊 ROUND %-3d SUMMARY          ║\n", margin, result.Number())
	renderer.printf("%s╠═══════════════════════════════════╣\n", margin)

	for _, roll := range result.Rolls() {
		marker := NoMarker
		if roll.Value == best {
			marker = WinnerMarker
		}

		renderer.printf("%s║  %-15s : %3d %s           ║\n", margin, roll.Player.Name, roll.Value, marker)
	}

	renderer.printf("%s╚═══════════════════════════════════╝\n", margin)

	winners := result.Winners()
	switch {
	case len(winners) == 1:
		highlight.Fprintf(renderer.out, "\n%s🎉 Winner of this round: %s!\n", margin, winners[0].Name)
	case len(winners) > 1:
		highlight.Fprintf(renderer.out, "\n%s🤝 It's a tie! Winners: %s\n", margin, strings.Join(game.Names(winners), ", "))
	}
}

// Standings shows the running totals, highest first.
func (renderer *Renderer) Standings(standings []game.Standing) {
	heading.Fprintf(renderer.out, "\n%s📈 TOTAL SCORES:\n", margin)
	for _, standing := range standings {
		renderer.printf("%s   %s: %d\n", margin, standing.Player.Name, standing.Total)
	}
}

// ContinueRule separates a round's results from the continue question.
func (renderer *Renderer) ContinueRule() {
	renderer.println()
	renderer.println(rule("─", 35))
}

// Medal returns the podium marker for the given competition rank.
func Medal(rank int) string {
	if rank >= 1 && rank < len(Medals) {
		return Medals[rank]
	}

	return NoMarker
}

// Podium shows the final ranking of the game and congratulates the
// overall winner, the first player of the standings.
func (renderer *Renderer) Podium(rounds int, standings []game.Standing) {
	renderer.printf("%s╔═══════════════════════════════════╗\n", margin)
	renderer.printf("%s║         🏁 GAME OVER! 🏁          ║\n", margin)
	renderer.printf("%s╠═══════════════════════════════════╣\n", margin)
	renderer.printf("%s║   %-4d round(s) played            ║\n", margin, rounds)
	renderer.printf("%s╠═══════════════════════════════════╣\n", margin)

	for _, standing := range standings {
		renderer.printf("%s║  %s %-13s : %4d points  ║\n",
			margin, Medal(standing.Rank), standing.Player.Name, standing.Total)
	}

	renderer.printf("%s╚═══════════════════════════════════╝\n", margin)

	if len(standings) > 0 {
		highlight.Fprintf(renderer.out, "\n%s🎊 Congratulations %s! You won the game! 🎊\n", margin, standings[0].Player.Name)
	}
}

// Farewell thanks the players once the game is over.
func (renderer *Renderer) Farewell() {
	renderer.printf("\n%sThanks for playing! 👋\n\n", margin)
}
