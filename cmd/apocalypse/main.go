// Command apocalypse runs a zombie pursuit scenario for a number of steps,
// optionally rendering each frame and recording per-step statistics as CSV.
//
//	apocalypse -scenario maps/maze.yaml -steps 50 -render -csv out.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/katalvlaran/apocalypse/apocalypse"
	"github.com/katalvlaran/apocalypse/grid"
	"github.com/katalvlaran/apocalypse/render"
	"github.com/katalvlaran/apocalypse/scenario"
	"github.com/katalvlaran/apocalypse/telemetry"
)

type runConfig struct {
	scenarioPath string
	csvPath      string
	steps        int
	seed         int64
	render       bool
	dump         bool
	logLevel     string

	stepsSet, seedSet bool
}

func main() {
	var cfg runConfig
	flag.StringVar(&cfg.scenarioPath, "scenario", "", "scenario YAML file (empty = embedded defaults)")
	flag.StringVar(&cfg.csvPath, "csv", "", "write per-step statistics to this CSV file")
	flag.IntVar(&cfg.steps, "steps", 0, "number of steps (overrides the scenario)")
	flag.Int64Var(&cfg.seed, "seed", 0, "tie-break seed (overrides the scenario)")
	flag.BoolVar(&cfg.render, "render", false, "print an ASCII frame after every step")
	flag.BoolVar(&cfg.dump, "dump", false, "print the effective scenario as YAML and exit")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			cfg.stepsSet = true
		case "seed":
			cfg.seedSet = true
		}
	})

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level %q: %v\n", cfg.logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg runConfig, out io.Writer, logger *slog.Logger) error {
	sc, err := scenario.Load(cfg.scenarioPath)
	if err != nil {
		return err
	}
	if cfg.stepsSet {
		sc.Steps = cfg.steps
	}
	if cfg.seedSet {
		sc.Seed = cfg.seed
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	if cfg.dump {
		return sc.Write(out)
	}

	sim, err := sc.Build()
	if err != nil {
		return err
	}
	logger.Info("scenario loaded",
		"height", sc.Height, "width", sc.Width,
		"zombies", sim.NumZombies(), "humans", sim.NumHumans(),
		"steps", sc.Steps, "seed", sc.Seed)
	if regions := sim.Grid().OpenRegions(grid.Conn4); len(regions) > 1 {
		logger.Warn("obstacles split the board; some entities may never meet", "regions", len(regions))
	}

	var rec *telemetry.Recorder
	if cfg.csvPath != "" {
		f, err := os.Create(cfg.csvPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.csvPath, err)
		}
		defer f.Close()
		rec = telemetry.NewRecorder(f)
	}

	if cfg.render {
		if err := render.Frame(out, sim); err != nil {
			return err
		}
	}

	var last telemetry.StepStats
	for i := 0; i < sc.Steps; i++ {
		if _, err := sim.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// Stats use the post-move positions, so the field is rebuilt here.
		zf, err := sim.ComputeDistanceField(apocalypse.Zombie)
		if err != nil {
			return err
		}
		last = telemetry.Collect(sim.Tick(), slices.Collect(sim.Humans()), zf, sim.NumZombies())
		logger.Debug("step", "stats", last)
		if err := rec.Write(last); err != nil {
			return err
		}
		if cfg.render {
			fmt.Fprintf(out, "\ntick %d\n", sim.Tick())
			if err := render.Frame(out, sim); err != nil {
				return err
			}
		}
	}

	logger.Info("simulation finished", "stats", last, "csv_rows", rec.Rows())
	return nil
}
