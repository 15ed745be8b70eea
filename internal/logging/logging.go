// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package logging creates the zerolog logger of the radixq command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaissmai/radix/internal/config"
)

// NewLogger returns a logger writing to w, human readable for the text
// format, JSON lines otherwise.
func NewLogger(conf config.LoggingConfig, w io.Writer) zerolog.Logger {
	if conf.Format == config.LogTextFormat {
		return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.TimeFormat = time.RFC3339
			cw.NoColor = true
		})).Level(conf.Level).With().Timestamp().Logger()
	}

	return zerolog.New(w).Level(conf.Level).With().Timestamp().Logger()
}
