package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrInvalidConfig is returned for unusable soak parameters.
var ErrInvalidConfig = errors.New("sim: invalid config")

// ctxCheckEvery is how many ticks run between cancellation checks.
const ctxCheckEvery = 1024

// Config controls a soak run.
type Config struct {
	Sessions     int   // independent sessions to play
	Ticks        int   // ticks per session
	Seed         int64 // session i uses Seed+i for both bag and bot
	Workers      int   // parallel sessions; 0 means GOMAXPROCS
	Timing       tetris.Timing
	ShowProgress bool
}

func (c Config) validate() error {
	switch {
	case c.Sessions < 1:
		return fmt.Errorf("%w: sessions must be > 0", ErrInvalidConfig)
	case c.Ticks < 1:
		return fmt.Errorf("%w: ticks must be > 0", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	case c.Timing.TickRate < 1:
		return fmt.Errorf("%w: tick rate must be > 0", ErrInvalidConfig)
	}
	return nil
}

// SessionResult summarizes one session.
type SessionResult struct {
	Seed   int64
	Games  int   // games started, including the unfinished last one
	Scores []int // final score of each game
	Best   int
	Pieces int // pieces locked in the last game
	Lines  int // rows cleared in the last game
}

// Run plays every session and stops at the first invariant violation.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bar := pb.StartNew(cfg.Sessions)
	if !cfg.ShowProgress {
		bar.SetWriter(io.Discard)
	}

	results := make([]SessionResult, cfg.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Sessions {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			res, err := playSession(ctx, seed, cfg.Ticks, cfg.Timing)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			logger.Debug("session done", "seed", seed, "games", res.Games, "best", res.Best)
			bar.Increment()
			return nil
		})
	}
	err := g.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()
	if err != nil {
		return nil, err
	}

	return newReport(results, cfg.Ticks, used), nil
}

// playSession runs one seeded session with a seeded bot.
func playSession(ctx context.Context, seed int64, ticks int, timing tetris.Timing) (SessionResult, error) {
	s := tetris.NewState(timing, tetris.NewSource(seed), 0)
	bot := NewBot(seed)
	tracker := core.NewKeyTracker(1)
	var chk checker

	res := SessionResult{Seed: seed, Games: 1}
	for tick := range ticks {
		if tick%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		wasOver := s.Phase() == tetris.PhaseGameOver
		s.Tick(tracker.Sample(bot.Next()))
		if err := chk.after(s, wasOver); err != nil {
			return res, fmt.Errorf("tick %d: %w", tick, err)
		}

		switch isOver := s.Phase() == tetris.PhaseGameOver; {
		case isOver && !wasOver:
			res.Scores = append(res.Scores, s.Score())
		case wasOver && !isOver:
			res.Games++
		}
	}

	if s.Phase() != tetris.PhaseGameOver {
		res.Scores = append(res.Scores, s.Score())
	}
	snap := s.Snapshot()
	res.Best = snap.Best
	res.Pieces = snap.Pieces
	res.Lines = snap.Lines
	return res, nil
}
