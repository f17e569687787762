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

// Package settings loads the user's preferences for how the game is shown.
// Settings never change the rules of the game, only its presentation.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Directory is the directory dice looks for its settings in.
var Directory = filepath.Join(xdg.ConfigHome, "dice")

// File is the default settings file.
var File = filepath.Join(Directory, "config.yaml")

// Settings are the user's display preferences. Every field can be set
// from the settings file and overridden from the environment.
type Settings struct {
	// Play the rolling animation before revealing a roll.
	Animation bool `yaml:"animation" env:"DICE_ANIMATION"`

	// Time each frame of the rolling animation is shown for.
	FrameDelay time.Duration `yaml:"frame-delay" env:"DICE_FRAME_DELAY"`

	// Number of times the rolling animation cycles through its frames.
	Spins int `yaml:"spins" env:"DICE_SPINS"`

	// Clear the screen at the start of every round.
	ClearScreen bool `yaml:"clear-screen" env:"DICE_CLEAR_SCREEN"`

	// Use colors in the output.
	Color bool `yaml:"color" env:"DICE_COLOR"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		Animation:   true,
		FrameDelay:  100 * time.Millisecond,
		Spins:       3,
		ClearScreen: true,
		Color:       true,
	}
}

// Load reads the settings file at path on top of the Default settings and
// then applies any overrides from the environment. A missing file is not
// an error, the defaults are used instead.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Debug("No settings file found, using defaults")

	case err != nil:
		return Settings{}, fmt.Errorf("load settings: %w", err)

	default:
		if err := yaml.Unmarshal(file, &settings); err != nil {
			return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
		}

		logrus.WithField("path", path).Debug("Loaded settings file")
	}

	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	logrus.WithFields(logrus.Fields{
		"animation":    settings.Animation,
		"frame-delay":  settings.FrameDelay,
		"spins":        settings.Spins,
		"clear-screen": settings.ClearScreen,
		"color":        settings.Color,
	}).Trace("Resolved settings")

	return settings, nil
}

// Validate checks that the settings can be used.
func (settings Settings) Validate() error {
	if settings.FrameDelay < 0 {
		return fmt.Errorf("settings: negative frame-delay %s", settings.FrameDelay)
	}

	if settings.Spins < 0 {
		return fmt.Errorf("settings: negative spins %d", settings.Spins)
	}

	return nil
}
