// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/katalvlaran/pwe/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a json (production) or console (development) logger.
// verbose forces debug level.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(lc.Format, "console") {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level := zapcore.InfoLevel
	if lc.Level != "" {
		parsed, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
