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

// Package prompt asks the players questions on the console and reads back
// their answers, retrying until an answer is usable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// ErrInputClosed is returned when the input ends before a question which
// needs an answer could be answered.
var ErrInputClosed = errors.New("prompt: input closed")

var warning = color.New(color.FgYellow)

// Prompter writes questions to an output and reads the answers line by
// line from an input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading answers from in and writing questions
// and warnings to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Text asks the given question and returns the answer with surrounding
// whitespace removed.
func (prompter *Prompter) Text(question string) (string, error) {
	fmt.Fprint(prompter.out, question)
	return prompter.line()
}

// Int asks the given question until the answer is an integer in the
// inclusive range [min, max]. Unusable answers get a warning and the
// question is asked again.
func (prompter *Prompter) Int(question string, min, max int) (int, error) {
	for {
		answer, err := prompter.Text(question)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			logrus.WithField("answer", answer).Debug("Rejected non-numeric answer")
			prompter.warn("Please enter a valid number.")

		case value < min || value > max:
			logrus.WithField("answer", value).Debug("Rejected out of range answer")
			prompter.warn(fmt.Sprintf("Please enter a number between %d and %d.", min, max))

		default:
			return value, nil
		}
	}
}

// Acknowledge shows the given message and waits for the user to press
// enter. Whatever is typed before enter is ignored.
func (prompter *Prompter) Acknowledge(message string) error {
	_, err := prompter.Text(message)
	return err
}

// Confirm asks a yes/no question. Only "y" or "yes", in any case, is an
// affirmative answer; anything else, including closed input, is a no.
func (prompter *Prompter) Confirm(question string) bool {
	answer, err := prompter.Text(question)
	if err != nil {
		logrus.Debug(err)
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (prompter *Prompter) warn(message string) {
	warning.Fprintf(prompter.out, "    ⚠️  %s\n", message)
}

// line reads the next line of input. A final line without a trailing
// newline is still returned; only an input with nothing left to read is
// reported as ErrInputClosed.
func (prompter *Prompter) line() (string, error) {
	line, err := prompter.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}

		return "", fmt.Errorf("prompt: %w", err)
	}

	return strings.TrimSpace(line), nil
}
