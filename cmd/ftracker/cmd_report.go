package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// errFailedPackages is returned when some packages got no report
var errFailedPackages = errors.New("some packages failed")

var reportCmd = cmd{
	name:      "report",
	shortHelp: "prints summaries of the sample packages",
	do: func(ctx context.Context, a *app) error {
		return printReports(ctx, a, ftracker.SamplePackages())
	},
}

// printReports writes a summary line per package in the order of packages.
// Packages which cannot be processed are logged and skipped.
func printReports(ctx context.Context, a *app, packages []ftracker.Package) error {
	results := ftracker.Report(ctx, packages, ftracker.WithWorkers(a.workers))

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			a.log.Error("cannot process package",
				zap.String("code", res.Package.Code),
				zap.Float64s("data", res.Package.Data),
				zap.Error(res.Err),
			)
			continue
		}

		if _, err := fmt.Fprintln(a.out, res.Info.Message()); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}

	a.log.Debug("packages reported", zap.Int("total", len(results)), zap.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailedPackages, failed, len(results))
	}
	return nil
}
