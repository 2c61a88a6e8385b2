package main

//go:generate go build -o=../../bin/ftracker

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

var cmds = []cmd{
	reportCmd,
	randomCmd,
}

type cmd struct {
	name      string
	shortHelp string
	do        func(ctx context.Context, a *app) error
	flags     *flag.FlagSet
}

// app is what commands share.
type app struct {
	out     io.Writer
	log     *zap.Logger
	workers int
}

const Usage = `ftracker prints summaries of fitness tracker workouts.

Usage: ftracker [flags] [command]

Without a command the sample packages are reported.

The commands are:
	help	show this help message
`

var errUnknownCommand = errors.New("unknown command")

func help(w io.Writer) {
	fmt.Fprint(w, Usage)

	for _, cmd := range cmds {
		fmt.Fprintf(w, "\t%s\t%s\n", cmd.name, cmd.shortHelp)
	}

	fmt.Fprintf(w, "\nKnown activity codes: %s\n\nFlags:\n", strings.Join(ftracker.Codes(), ", "))
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ftracker: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Usage = func() { help(os.Stderr) }
	flag.Parse()

	logger, err := newLogger(config.LogLevel, zapcore.Lock(os.Stderr))
	if err != nil {
		fatalf("cannot create logger: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	a := &app{
		out:     os.Stdout,
		log:     logger,
		workers: config.Workers,
	}

	err = run(ctx, a, flag.Args())
	stop()
	_ = logger.Sync()

	switch {
	case errors.Is(err, errUnknownCommand):
		help(os.Stderr)
		os.Exit(2)
	case err != nil:
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return reportCmd.do(ctx, a)
	}
	if args[0] == "help" {
		help(a.out)
		return nil
	}

	for _, cmd := range cmds {
		if args[0] != cmd.name {
			continue
		}
		if cmd.flags != nil {
			cmd.flags.SetOutput(a.out)
			err := cmd.flags.Parse(args[1:])
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("cannot parse arguments of %s: %w", cmd.name, err)
			}
		}

		a.log.Debug("running command", zap.String("command", cmd.name), zap.Int("workers", a.workers))
		err := cmd.do(ctx, a)
		if err != nil {
			a.log.Error("command failed", zap.String("command", cmd.name), zap.Error(err))
		}
		return err
	}

	a.log.Error("unknown command", zap.String("command", args[0]))
	return fmt.Errorf("%w %q", errUnknownCommand, args[0])
}
