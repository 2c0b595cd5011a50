// Package compiler runs the cppent pipeline: it loads schema files,
// generates every entity in parallel and writes the documents.
package compiler

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
	"github.com/syssam/cppent/internal/logger"
)

// Config holds the settings of one pipeline run.
type Config struct {
	// Paths are schema files or directories.
	Paths []string
	// Schemas are generated in addition to the ones loaded from Paths.
	Schemas []*load.Schema
	// Output is the target directory. Nothing is written when empty.
	Output string
	// Workers bounds the number of entities generated at once.
	// Defaults to GOMAXPROCS.
	Workers int
	// Options configure the generation engine.
	Options []gen.Option
}

// Report describes the outcome of a run.
type Report struct {
	// Results are in schema order.
	Results []*gen.Result
	// Files are the written paths, empty when Config.Output is empty.
	Files    []string
	Warnings []gen.Warning
	Duration time.Duration
}

// Generate loads, generates and writes the schemas described by cfg.
// The logger is taken from ctx.
func Generate(ctx context.Context, cfg Config) (*Report, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	schemas, err := load.Load(cfg.Paths...)
	if err != nil {
		return nil, err
	}
	schemas = append(schemas, cfg.Schemas...)
	if len(schemas) == 0 {
		return nil, gen.NewConfigError("Paths", nil, "no schema to generate")
	}
	eng, err := gen.New(cfg.Options...)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*gen.Result, len(schemas))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range schemas {
		eg.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := eng.Generate(s)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	for _, res := range results {
		log.Debug("generated entity", "entity", res.Entity, "class", res.Class, "warnings", len(res.Warnings))
		for _, w := range res.Warnings {
			log.Warn(w.Message, "entity", w.Entity, "field", w.Field)
		}
		report.Warnings = append(report.Warnings, res.Warnings...)
	}
	if cfg.Output != "" {
		w := gen.NewWriter(cfg.Output).WithWorkers(workers)
		if report.Files, err = w.Write(ctx, results...); err != nil {
			return nil, err
		}
		m := w.Metrics()
		log.Debug("wrote documents", "files", m.FilesWritten, "bytes", m.TotalBytes, "output", cfg.Output)
	}
	report.Duration = time.Since(start)
	log.Info("generation complete", "entities", len(results), "warnings", len(report.Warnings), "duration", report.Duration)
	return report, nil
}
