// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package config holds the configuration of the radixq command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gaissmai/radix/textkey"
)

// ErrConfiguration is wrapped by all errors from loading the configuration.
var ErrConfiguration = errors.New("configuration error")

// Configuration of radixq, koanf keys in lowercase.
type Configuration struct {
	// word-list files to index
	Input []string `koanf:"input"`

	// how keys are split into elements
	Split textkey.Mode `koanf:"split"`

	// NFC normalization of keys before splitting
	Normalize bool `koanf:"normalize"`

	Log LoggingConfig `koanf:"log"`
}

// LoggingConfig selects level and format of the log output.
type LoggingConfig struct {
	Level  zerolog.Level `koanf:"level"`
	Format LogFormat     `koanf:"format"`
}

// LogFormat of the log output.
type LogFormat int

const (
	LogTextFormat LogFormat = iota
	LogJSONFormat
)

func (f LogFormat) String() string {
	if f == LogJSONFormat {
		return "json"
	}
	return "text"
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *LogFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "text", "":
		*f = LogTextFormat
	case "json":
		*f = LogJSONFormat
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrConfiguration, text)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{
		Split: textkey.Runes,
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogTextFormat,
		},
	}
}
