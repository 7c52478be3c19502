package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"example.com/live-scoreboard/internal/config"
	"example.com/live-scoreboard/internal/feed"
	"example.com/live-scoreboard/internal/scoreboard"
)

type App struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer

	board    *scoreboard.Scoreboard
	replayer *feed.Replayer
}

type Options struct {
	Out   io.Writer        // summary destination; defaults to stdout
	Clock scoreboard.Clock // optional; defaults to time.Now
}

func New(cfg config.Config, log *slog.Logger, opts Options) *App {
	if log == nil {
		log = slog.Default()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	board := scoreboard.New(opts.Clock, scoreboard.NewInMemoryMatchStore(), log.With("component", "scoreboard"))
	replayer := &feed.Replayer{
		Board:       board,
		Interval:    cfg.Feed.Interval,
		StopOnError: cfg.Feed.StopOnError,
		Log:         log.With("component", "feed"),
	}

	return &App{cfg: cfg, log: log, out: out, board: board, replayer: replayer}
}

// Board exposes the live scoreboard for embedding callers.
func (a *App) Board() *scoreboard.Scoreboard {
	return a.board
}

// Run replays all configured feeds concurrently, then writes the summary.
func (a *App) Run(ctx context.Context) error {
	feeds := make([]feed.Feed, 0, len(a.cfg.Feed.Files))
	for _, path := range a.cfg.Feed.Files {
		f, err := feed.Load(path)
		if err != nil {
			return err
		}
		feeds = append(feeds, f)
	}

	a.log.Info("replaying feeds", "feeds", len(feeds), "interval", a.cfg.Feed.Interval)

	results, err := a.replayer.RunAll(ctx, feeds)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	var applied, rejected int
	for _, r := range results {
		applied += r.Applied
		rejected += r.Rejected
	}
	a.log.Info("feeds done", "applied", applied, "rejected", rejected, "live", a.board.Len())

	return a.writeSummary(a.board.Summary())
}

func (a *App) writeSummary(summary []scoreboard.Match) error {
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(scoreboard.Snapshot(summary))
	}

	if len(summary) == 0 {
		_, err := fmt.Fprintln(a.out, "no live matches")
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, m := range summary {
		fmt.Fprintf(tw, "%d.\t%s %d\t-\t%s %d\n", i+1, m.HomeTeam, m.Score.Home, m.AwayTeam, m.Score.Away)
	}
	return tw.Flush()
}
