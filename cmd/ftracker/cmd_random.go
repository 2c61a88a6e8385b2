package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var randomFlags = flag.NewFlagSet("random", flag.ContinueOnError)

var (
	flagRandomCount = randomFlags.Int("n", 5, "number of packages to generate")
)

var randomCmd = cmd{
	name:      "random",
	shortHelp: "prints summaries of random packages",
	do:        generateRandom,
	flags:     randomFlags,
}

func generateRandom(ctx context.Context, a *app) error {
	if *flagRandomCount < 0 {
		return fmt.Errorf("number of packages must not be negative, got %d", *flagRandomCount)
	}
	return printReports(ctx, a, random.Packages(*flagRandomCount))
}
