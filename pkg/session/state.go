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

package session

// State is a step of the session loop.
type State int

const (
	Configuring State = iota
	PlayingRound
	ShowingSummary
	AskingContinue
	Finished
)

// String returns a string representation of the given State.
func (state State) String() string {
	switch state {
	case Configuring:
		return "configuring"
	case PlayingRound:
		return "playing-round"
	case ShowingSummary:
		return "showing-summary"
	case AskingContinue:
		return "asking-continue"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
