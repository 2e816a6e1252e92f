package main

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"martianrobots/internal/config"
	"martianrobots/internal/mars"
	"martianrobots/internal/metrics"
	"martianrobots/internal/mission"
)

func main() {
	// usage: martianrobots [input file [output file]]
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Fatal("Invalid log level", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	m, err := mission.Load(cfg.Input, mission.Strict(cfg.Strict))
	if err != nil {
		logger.Fatal("Failed to load mission", zap.String("input", cfg.Input), zap.Error(err))
	}
	logger.Info("Mission loaded",
		zap.String("input", cfg.Input),
		zap.Int("robots", len(m.Robots)),
		zap.Int("max_x", m.TopRight.X),
		zap.Int("max_y", m.TopRight.Y),
	)

	sim := mars.NewSimulator(m.TopRight, logger)
	results := sim.Run(m.Robots)

	if err := mission.WriteFile(cfg.Output, results); err != nil {
		logger.Fatal("Failed to write results", zap.String("output", cfg.Output), zap.Error(err))
	}

	st := sim.Stats()
	logger.Info("Simulation finished",
		zap.String("output", cfg.Output),
		zap.Int("lost", st.Lost),
		zap.Int("scents", len(sim.Scents())),
	)

	if cfg.Render {
		if err := mars.Render(os.Stderr, m.TopRight, results, sim.Scents()); err != nil {
			logger.Error("Failed to render grid", zap.Error(err))
		}
	}

	if cfg.MetricsFile != "" {
		run := metrics.NewRun()
		run.Observe(st, len(sim.Scents()))
		if err := run.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Failed to write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}
