package main

import (
	"flag"
	"os"
	"strconv"
)

var config = struct {
	Workers  int
	LogLevel string
}{
	Workers: func() int {
		if val := os.Getenv("FTRACKER_WORKERS"); val != "" {
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				return n
			}
		}
		return 1
	}(),

	LogLevel: func() string {
		if val := os.Getenv("FTRACKER_LOG_LEVEL"); val != "" {
			return val
		}
		return "info"
	}(),
}

func init() {
	flag.IntVar(&config.Workers, "workers", config.Workers, "number of packages processed concurrently")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level: debug, info, warn, error")
}
