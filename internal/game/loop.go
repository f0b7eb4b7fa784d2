// Package game drives the chunk manager once per tick.
package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"planet-lod/internal/profiling"
	"planet-lod/internal/viewer"
	"planet-lod/internal/world"
)

// Updater is the per-tick step of a chunk manager.
type Updater interface {
	Update(viewer mgl32.Vec3) (world.FrameStats, error)
}

// Loop feeds viewer positions from a path into an Updater.
type Loop struct {
	updater Updater
	path    viewer.Path
	limiter *FPSLimiter
	prof    *profiling.Tracker
	log     *slog.Logger

	// SlowTick is the duration above which a tick is logged together with
	// its most expensive tasks. Zero disables the log line.
	SlowTick time.Duration
	// OnTick, when set, receives the overlay after every tick.
	OnTick func(Overlay)

	fps  fpsCounter
	last Overlay
	tick uint64
}

// Summary describes a finished Run.
type Summary struct {
	Ticks    uint64
	Errors   int
	Duration time.Duration
	Last     Overlay
}

// NewLoop creates a loop. prof and log may be nil.
func NewLoop(u Updater, path viewer.Path, limiter *FPSLimiter, prof *profiling.Tracker, log *slog.Logger) *Loop {
	if limiter == nil {
		limiter = NewFPSLimiter(0)
	}
	if prof == nil {
		prof = profiling.New()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		updater: u,
		path:    path,
		limiter: limiter,
		prof:    prof,
		log:     log.With("component", "loop"),
	}
}

// Tick runs one update. The error is the updater's, tagged with the tick.
func (l *Loop) Tick() (Overlay, error) {
	l.prof.Reset()
	start := time.Now()

	pos := l.path.Position(l.tick)
	l.tick++
	stats, err := l.updater.Update(pos)

	d := time.Since(start)
	if l.SlowTick > 0 && d > l.SlowTick {
		l.log.Warn("slow tick", "tick", stats.Tick, "duration", d, "top", l.prof.TopN(5))
	}

	l.last = Overlay{FPS: l.fps.tick(time.Now()), Stats: stats}
	if l.OnTick != nil {
		l.OnTick(l.last)
	}
	if err != nil {
		return l.last, fmt.Errorf("tick %d: %w", stats.Tick, err)
	}
	return l.last, nil
}

// Run ticks until ctx is done or, when ticks is positive, that many ticks
// have run. Tick errors are logged and counted; the first one is returned
// once the loop stops. A canceled ctx is not an error.
func (l *Loop) Run(ctx context.Context, ticks uint64) (Summary, error) {
	start := time.Now()
	var (
		sum      Summary
		firstErr error
	)
	for ticks == 0 || sum.Ticks < ticks {
		if ctx.Err() != nil {
			break
		}
		ov, err := l.Tick()
		sum.Ticks++
		if err != nil {
			sum.Errors++
			l.log.Error("tick failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		if ov.Stats.Rebuilt > 0 {
			l.log.Debug("lod update",
				"tick", ov.Stats.Tick,
				"rebuilt", ov.Stats.Rebuilt,
				"pending", ov.Stats.Pending,
				"triangles", ov.Stats.Triangles)
		}
		l.limiter.Wait()
	}
	sum.Duration = time.Since(start)
	sum.Last = l.last
	return sum, firstErr
}

// Last returns the overlay of the latest tick.
func (l *Loop) Last() Overlay {
	return l.last
}
