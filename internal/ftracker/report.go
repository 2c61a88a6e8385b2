package ftracker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a single package.
type Result struct {
	Package Package
	Info    InfoMessage
	Err     error
}

type reportConfig struct {
	workers int
}

// ReportOpt configures Report.
type ReportOpt = func(c *reportConfig)

// WithWorkers sets how many packages are processed at once.
// Values below 1 keep the default of 1.
func WithWorkers(n int) ReportOpt {
	return func(c *reportConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Report builds summaries for packages. Results keep the order of packages.
// A bad package only fails its own result.
func Report(ctx context.Context, packages []Package, opts ...ReportOpt) []Result {
	cfg := reportConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result, len(packages))

	var g errgroup.Group
	g.SetLimit(cfg.workers)

	for i, pkg := range packages {
		results[i].Package = pkg
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		i, pkg := i, pkg
		g.Go(func() error {
			w, err := ReadPackage(pkg.Code, pkg.Data)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Info = ShowTrainingInfo(w)
			return nil
		})
	}

	// errors live in Result.Err so one bad package does not cancel the rest,
	// the group only bounds concurrency
	_ = g.Wait()
	return results
}
