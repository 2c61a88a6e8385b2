package main

import (
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns console logger writing to w.
// Every entry carries the run_id of the current invocation.
func newLogger(level string, w zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("cannot parse log level: %w", err)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("cannot generate run id: %w", err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), w, lvl)

	return zap.New(core).With(zap.String("run_id", runID.String())), nil
}
