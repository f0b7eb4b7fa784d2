package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planet-lod/internal/config"
	"planet-lod/internal/game"
	"planet-lod/internal/noise"
	"planet-lod/internal/profiling"
	"planet-lod/internal/viewer"
	"planet-lod/internal/world"
)

func main() {
	cfg := config.Default()

	configPath := flag.String("config", "", "path to a JSON settings file")
	ticks := flag.Uint64("ticks", 600, "number of ticks to run (0 = until interrupted)")
	pathName := flag.String("path", viewer.PathOrbit, "viewer path: static, orbit or approach")
	verbose := flag.Bool("v", false, "log every chunk rebuild")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	flag.IntVar(&cfg.InitWorkers, "workers", cfg.InitWorkers, "goroutines for the initial chunk build")
	flag.StringVar(&cfg.NoiseBackend, "backend", cfg.NoiseBackend, "noise backend: gradient, opensimplex or perlin")
	flag.IntVar(&cfg.MaxUpdatesPerTick, "max-updates", cfg.MaxUpdatesPerTick, "chunk rebuilds per tick")
	flag.BoolVar(&cfg.PrioritizeNearest, "nearest", cfg.PrioritizeNearest, "rebuild the nearest pending chunks first")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	path, err := viewer.Parse(*pathName, cfg.Center(), float32(cfg.TargetRadius))
	if err != nil {
		log.Error("viewer path", "error", err, "available", []string{viewer.PathStatic, viewer.PathOrbit, viewer.PathApproach})
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, path, *ticks, log); err != nil {
		log.Error("planetlod", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Settings, path viewer.Path, ticks uint64, log *slog.Logger) error {
	field, err := world.NewField(cfg)
	if err != nil {
		return err
	}
	renderer := world.NewMemoryRenderer()
	manager, err := world.NewChunkManager(cfg, field, renderer, log)
	if err != nil {
		return err
	}
	prof := profiling.New()
	manager.SetTracker(prof)

	start := time.Now()
	if err := manager.Initialize(ctx); err != nil {
		return err
	}
	log.Info("planet built",
		"seed", cfg.Seed,
		"backend", cfg.NoiseBackend,
		"chunks", manager.Len(),
		"meshes", renderer.Live(),
		"elapsed", time.Since(start))

	loop := game.NewLoop(manager, path, game.NewFPSLimiter(cfg.FPSLimit), prof, log)
	loop.SlowTick = time.Duration(cfg.TickBudgetMS * float64(time.Millisecond))
	sum, runErr := loop.Run(ctx, ticks)

	stats := sum.Last.Stats
	log.Info("run finished",
		"ticks", sum.Ticks,
		"errors", sum.Errors,
		"duration", sum.Duration,
		"fps", sum.Last.FPS,
		"vertices", stats.Vertices,
		"triangles", stats.Triangles,
		"pending", stats.Pending-stats.Rebuilt)
	if c, ok := field.(*noise.Cached); ok {
		hits, misses := c.Stats()
		log.Info("noise cache", "entries", c.Len(), "hits", hits, "misses", misses)
	}

	if err := manager.Close(); err != nil {
		return err
	}
	uploads, releases := renderer.Counts()
	log.Info("renderer released", "uploads", uploads, "releases", releases, "live", renderer.Live())
	return runErr
}
