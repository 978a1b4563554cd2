package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/marsnap"
	main "github.com/fwojciec/marsnap/cmd/marsnap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"scrape", "list", "show", "delete"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ScrapeDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"scrape"})
	require.NoError(t, err)

	assert.Equal(t, "json", cli.Scrape.Format)
	assert.Equal(t, "2m0s", cli.Scrape.Timeout.String())
	assert.Nil(t, cli.Scrape.Pacing)
	assert.False(t, cli.Scrape.Save)
}

func TestCLI_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"show", "abc", "--format", "xml"})
	require.Error(t, err)
}

func TestScrapeCmd_Targets(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, args ...string) *main.ScrapeCmd {
		t.Helper()
		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)
		_, err = parser.Parse(append([]string{"scrape"}, args...))
		require.NoError(t, err)
		return &cli.Scrape
	}

	t.Run("keeps default pacing without the flag", func(t *testing.T) {
		t.Parallel()

		targets, err := parse(t).Targets()

		require.NoError(t, err)
		assert.Equal(t, marsnap.DefaultPacing, targets.Gallery.Pacing)
	})

	t.Run("zero pacing disables pacing", func(t *testing.T) {
		t.Parallel()

		cmd := parse(t, "--pacing", "0")
		require.NotNil(t, cmd.Pacing)

		targets, err := cmd.Targets()

		require.NoError(t, err)
		assert.Zero(t, targets.Gallery.Pacing)
	})

	t.Run("flag overrides config file pacing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "targets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gallery:\n  pacing: 250ms\n"), 0o600))

		fromConfig, err := parse(t, "--config", path).Targets()
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, fromConfig.Gallery.Pacing)

		overridden, err := parse(t, "--config", path, "--pacing", "2s").Targets()
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, overridden.Gallery.Pacing)
	})
}
