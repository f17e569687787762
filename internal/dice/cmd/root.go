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

package cmd

import (
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"laptudirm.com/x/dice/pkg/dice"
	"laptudirm.com/x/dice/pkg/display"
	"laptudirm.com/x/dice/pkg/session"
	"laptudirm.com/x/dice/pkg/settings"
)

// Version is the version of dice shown by --version.
var Version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "dice",
		Short: "Roll dice against your friends, round after round",
		Long: heredoc.Doc(`dice is a turn-based dice game for the console. Pick a die
			with anywhere from 2 to 100 faces and up to 10 players, and
			take turns rolling it. Every round's rolls are added to the
			players' scores, and once you stop playing the players are
			ranked on a podium.

			Display preferences are read from the settings file, which
			defaults to $XDG_CONFIG_HOME/dice/config.yaml, and can be
			overridden with DICE_* environment variables.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd)
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Dice's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Flags().StringP("config", "c", settings.File, "Read display settings from the given file")
	root.Flags().Int64("seed", 0, "Seed the dice to replay a game")
	root.Flags().BoolP("quick", "q", false, "Don't animate rolls or clear the screen")

	versionStr := Version + "\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	return root
}

func play(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	config, err := settings.Load(path)
	if err != nil {
		return err
	}

	if quick, _ := cmd.Flags().GetBool("quick"); quick {
		config.Animation = false
		config.ClearScreen = false
	}

	if !config.Color {
		color.NoColor = true
	}

	var seed int64
	if cmd.Flag("seed").Changed {
		seed, _ = cmd.Flags().GetInt64("seed")
	} else if seed, err = dice.NewSeed(); err != nil {
		return err
	}

	logrus.WithField("seed", seed).Debug("Seeded the dice")

	out := cmd.OutOrStdout()
	return session.New(session.Config{
		In:     cmd.InOrStdin(),
		Out:    out,
		Driver: driver(out, config),
		Source: dice.NewSource(seed),
	}).Run()
}

// driver picks the display driver for the given output. Only a terminal
// can be cleared or animated on.
func driver(out io.Writer, config settings.Settings) display.Driver {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		logrus.Debug("Output is not a terminal, using headless display")
		return display.Headless{}
	}

	return display.NewTerminal(out, display.TerminalConfig{
		Clear:   config.ClearScreen,
		Animate: config.Animation,
		Delay:   config.FrameDelay,
		Spins:   config.Spins,
	})
}
