package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"example.com/live-scoreboard/internal/config"
	"example.com/live-scoreboard/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	groupA = `
name: group-a
events:
  - {op: start, home: Mexico, away: Canada}
  - {op: update, home: Mexico, away: Canada, homeScore: 0, awayScore: 5}
  - {op: start, home: Germany, away: France}
  - {op: update, home: Germany, away: France, homeScore: 2, awayScore: 2}
`
	groupB = `
name: group-b
events:
  - {op: start, home: Spain, away: Brazil}
  - {op: update, home: Spain, away: Brazil, homeScore: 10, awayScore: 2}
  - {op: start, home: Poland, away: Wales}
  - {op: finish, home: Poland, away: Wales}
`
)

func writeFeeds(t *testing.T, bodies ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(bodies))
	for i, b := range bodies {
		p := filepath.Join(dir, string(rune('a'+i))+".yaml")
		require.NoError(t, os.WriteFile(p, []byte(b), 0o600))
		paths = append(paths, p)
	}
	return paths
}

func testConfig(files []string, output string) config.Config {
	return config.Config{
		Env:    "dev",
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Feed:   config.FeedConfig{Files: files},
		Output: config.OutputConfig{Format: output},
	}
}

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_TextSummary(t *testing.T) {
	var out bytes.Buffer
	a := New(testConfig(writeFeeds(t, groupA, groupB), "text"), quietLog(), Options{Out: &out})

	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Spain 10")
	assert.Contains(t, lines[1], "Mexico 0")
	assert.Contains(t, lines[2], "Germany 2")
	assert.Equal(t, 3, a.Board().Len())
}

func TestRun_JSONSummary(t *testing.T) {
	var out bytes.Buffer
	a := New(testConfig(writeFeeds(t, groupA), "json"), quietLog(), Options{Out: &out})

	require.NoError(t, a.Run(context.Background()))

	var snaps []scoreboard.MatchSnapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snaps))
	require.Len(t, snaps, 2)
	assert.Equal(t, 1, snaps[0].Rank)
	assert.Equal(t, "Mexico", snaps[0].HomeTeam)
	assert.Equal(t, 5, snaps[0].TotalScore)
	assert.NotEmpty(t, snaps[0].ID)
}

func TestRun_EmptySummary(t *testing.T) {
	var out bytes.Buffer
	body := "events:\n  - {op: start, home: A, away: B}\n  - {op: finish, home: A, away: B}\n"
	a := New(testConfig(writeFeeds(t, body), "text"), quietLog(), Options{Out: &out})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "no live matches\n", out.String())
}

func TestRun_StopOnError(t *testing.T) {
	cfg := testConfig(writeFeeds(t, "events:\n  - {op: finish, home: A, away: B}\n"), "text")
	cfg.Feed.StopOnError = true

	var out bytes.Buffer
	err := New(cfg, quietLog(), Options{Out: &out}).Run(context.Background())
	require.ErrorIs(t, err, scoreboard.ErrMatchNotFound)
	assert.Empty(t, out.String())
}

func TestRun_MissingFeed(t *testing.T) {
	cfg := testConfig([]string{filepath.Join(t.TempDir(), "missing.yaml")}, "text")
	err := New(cfg, quietLog(), Options{Out: io.Discard}).Run(context.Background())
	require.Error(t, err)
}
