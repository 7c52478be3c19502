package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Feed     string
	Applied  int
	Rejected int
}

// Replayer applies feeds to a Board.
type Replayer struct {
	Board       Board
	Interval    time.Duration // pause between events, 0 => none
	StopOnError bool
	Log         *slog.Logger
}

// Replay applies the feed's events in order. Rejected events are logged and
// counted; with StopOnError the first rejection ends the replay with an error.
func (r *Replayer) Replay(ctx context.Context, f Feed) (Result, error) {
	log := r.logger().With("feed", f.Name)
	res := Result{Feed: f.Name}

	for i, ev := range f.Events {
		if i > 0 && r.Interval > 0 {
			t := time.NewTimer(r.Interval)
			select {
			case <-ctx.Done():
				t.Stop()
				return res, ctx.Err()
			case <-t.C:
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := Apply(r.Board, ev); err != nil {
			res.Rejected++
			log.Warn("event rejected", "index", i, "event", ev.String(), "err", err)
			if r.StopOnError {
				return res, fmt.Errorf("feed %s event %d (%s): %w", f.Name, i, ev, err)
			}
			continue
		}
		res.Applied++
	}

	log.Info("feed replayed", "applied", res.Applied, "rejected", res.Rejected)
	return res, nil
}

// RunAll replays every feed concurrently. The first error cancels the others.
// Results are returned in feed order.
func (r *Replayer) RunAll(ctx context.Context, feeds []Feed) ([]Result, error) {
	results := make([]Result, len(feeds))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range feeds {
		i, f := i, f
		g.Go(func() error {
			res, err := r.Replay(gctx, f)
			results[i] = res
			return err
		})
	}

	err := g.Wait()
	return results, err
}

func (r *Replayer) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}
