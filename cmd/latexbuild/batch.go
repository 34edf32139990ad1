package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/CarbonAltDelete/latexbuild/internal/config"
)

// ErrMissingJobsFile is returned when batch is invoked without a job list.
var ErrMissingJobsFile = errors.New("exactly one jobs file is required")

// BuildResult holds the outcome of a single batch job.
type BuildResult struct {
	Template string
	Output   string
	Err      error
	Duration time.Duration
}

// runBatch builds every job in a YAML job list, concurrently. Jobs are
// independent: one failing does not stop the rest. The command fails if any
// job failed.
func runBatch(ctx context.Context, args []string) error {
	f, positional, err := parseBatchFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return ErrMissingJobsFile
	}

	settings, err := resolveSettings(f.common)
	if err != nil {
		// The jobs file may carry its own template root; re-checked below.
		if !errors.Is(err, ErrMissingRoot) {
			return err
		}
	}

	jobs, err := config.LoadJobs(positional[0])
	if err != nil {
		return err
	}
	if jobs.TemplateRoot != "" {
		settings.root = jobs.TemplateRoot
	}
	if settings.root == "" {
		return ErrMissingRoot
	}
	if f.workers > 0 {
		settings.workers = f.workers
	}

	logger := newLogger(f.common.verbose, f.common.quiet)
	results := buildBatch(ctx, settings, jobs.Jobs, logger)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("job failed", "template", r.Template, "output", r.Output, "error", r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	logger.Info("batch complete", "jobs", len(results))
	return nil
}

// buildBatch processes jobs concurrently with a bounded worker pool. Each
// build namespaces its own temp files, so workers share the template root
// without coordination.
func buildBatch(ctx context.Context, settings buildSettings, jobs []config.Job, logger *slog.Logger) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := resolveWorkers(settings.workers)
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]BuildResult, len(jobs))
	queue := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				results[idx] = buildJob(ctx, settings, jobs[idx], logger)
			}
		}()
	}

	for idx := range jobs {
		queue <- idx
	}
	close(queue)
	wg.Wait()

	return results
}

// buildJob builds one job and records its outcome.
func buildJob(ctx context.Context, settings buildSettings, job config.Job, logger *slog.Logger) BuildResult {
	start := time.Now()
	result := BuildResult{Template: job.Template, Output: job.Output}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	b, err := newBuilder(settings, job.Template, job.Params, job.RawParams, logger)
	if err != nil {
		result.Err = err
		return result
	}

	_, err = buildByFormat(ctx, b, job.Output)
	result.Err = err
	result.Duration = time.Since(start)
	return result
}

// resolveWorkers determines batch parallelism.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	// automaxprocs has already adjusted GOMAXPROCS for container limits.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
