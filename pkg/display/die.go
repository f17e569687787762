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
	"strconv"
	"strings"

	"laptudirm.com/x/dice/pkg/dice"
)

const faceWidth = 9 // Inner width of a rendered die face.

var (
	faceTop    = "┌" + strings.Repeat("─", faceWidth) + "┐"
	faceBottom = "└" + strings.Repeat("─", faceWidth) + "┘"
	faceBlank  = "│" + strings.Repeat(" ", faceWidth) + "│"
)

// pips holds the middle three lines of every face of a six-sided die.
var pips = [7][3]string{
	1: {
		"│         │",
		"│    ●    │",
		"│         │",
	},
	2: {
		"│ ●       │",
		"│         │",
		"│       ● │",
	},
	3: {
		"│ ●       │",
		"│    ●    │",
		"│       ● │",
	},
	4: {
		"│ ●     ● │",
		"│         │",
		"│ ●     ● │",
	},
	5: {
		"│ ●     ● │",
		"│    ●    │",
		"│ ●     ● │",
	},
	6: {
		"│ ●     ● │",
		"│ ●     ● │",
		"│ ●     ● │",
	},
}

// Face returns the lines of art showing the given value of the die. A
// six-sided die is drawn with pips, any other die with its value written
// in the middle of the face.
func Face(die dice.Die, value int) []string {
	if die.IsStandard() && value >= 1 && value <= 6 {
		return []string{faceTop, pips[value][0], pips[value][1], pips[value][2], faceBottom}
	}

	numeral := strconv.Itoa(value)
	left := (faceWidth - len(numeral)) / 2
	right := faceWidth - left - len(numeral)

	return []string{
		faceTop,
		faceBlank,
		"│" + strings.Repeat(" ", left) + numeral + strings.Repeat(" ", right) + "│",
		faceBlank,
		faceBottom,
	}
}
