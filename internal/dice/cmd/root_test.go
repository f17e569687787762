package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/dice/pkg/display"
	"laptudirm.com/x/dice/pkg/prompt"
	"laptudirm.com/x/dice/pkg/settings"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

func TestRootPlaysGame(t *testing.T) {
	config := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "6\n2\nAna\n\n\n\nn\n", "--seed", "1", "--quick", "--config", config)
	require.NoError(t, err)

	assert.Contains(t, out, "DICE GAME")
	assert.Contains(t, out, "Player 2 rolled the die!")
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Thanks for playing!")
}

func TestRootSeedReplaysGame(t *testing.T) {
	config := filepath.Join(t.TempDir(), "config.yaml")
	input := "20\n3\nAna\nBeth\nCem\n\n\n\ny\n\n\n\nn\n"

	first, err := execute(t, input, "--seed", "12345", "--config", config)
	require.NoError(t, err)
	second, err := execute(t, input, "--seed", "12345", "--config", config)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRootClosedInput(t *testing.T) {
	config := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "6\n", "--seed", "1", "--config", config)
	require.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "", "extra")
	require.Error(t, err)
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestDriverForNonTerminal(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, display.Headless{}, driver(&out, settings.Default()))
}
