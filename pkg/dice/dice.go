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

// Package dice implements the single die every player of a session rolls,
// along with the sources of randomness used to roll it.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

const (
	MinFaces = 2   // Smallest die a session can be played with.
	MaxFaces = 100 // Largest die a session can be played with.
)

// ErrInvalidFaces indicates a die was configured outside [MinFaces, MaxFaces].
var ErrInvalidFaces = fmt.Errorf("dice must have between %d and %d faces", MinFaces, MaxFaces)

// Die is a fair die with a fixed number of faces numbered 1 to Faces.
type Die struct {
	Faces int
}

// NewDie creates a Die with the given number of faces. It returns
// ErrInvalidFaces if faces lies outside [MinFaces, MaxFaces].
func NewDie(faces int) (Die, error) {
	if faces < MinFaces || faces > MaxFaces {
		return Die{}, fmt.Errorf("new die: %d faces: %w", faces, ErrInvalidFaces)
	}

	return Die{Faces: faces}, nil
}

// Roll draws one uniformly distributed value in [1, die.Faces] from src.
func (die Die) Roll(src Source) int {
	return src.Intn(die.Faces) + 1
}

// IsStandard reports whether the die is a regular six-sided die, which
// has its own pip rendering.
func (die Die) IsStandard() bool {
	return die.Faces == 6
}

func (die Die) String() string {
	return fmt.Sprintf("d%d", die.Faces)
}

// Source is the randomness provider for rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n > 0.
	Intn(n int) int
}

// NewSource returns a pseudo-random Source seeded with seed. It is not
// safe for concurrent use, which a session never needs.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ErrEmptySequence is returned by Sequence when no values are given.
var ErrEmptySequence = errors.New("sequence needs at least one value")

// Sequence returns a Source which replays the given roll values in order,
// wrapping around once they are exhausted. Values are die faces (1-based),
// so Sequence(4, 4) forces two rolls of 4 on any die with at least 4 faces.
// A value larger than the die being rolled wraps modulo the face count.
func Sequence(values ...int) (Source, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}

	for _, value := range values {
		if value < 1 {
			return nil, fmt.Errorf("sequence: roll %d is not a die face", value)
		}
	}

	return &sequence{values: values}, nil
}

type sequence struct {
	values []int
	next   int
}

func (seq *sequence) Intn(n int) int {
	value := seq.values[seq.next]
	seq.next = (seq.next + 1) % len(seq.values)
	return (value - 1) % n
}
