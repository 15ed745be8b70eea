// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix of environment variables, RADIXQ_LOG_LEVEL sets log.level.
const DefaultEnvPrefix = "RADIXQ_"

type opts struct {
	configFile string
	envPrefix  string
	overrides  map[string]any
}

// Option for Load.
type Option func(*opts)

// WithConfigFile sets the YAML configuration file, it must exist.
func WithConfigFile(file string) Option {
	return func(o *opts) {
		if file = strings.TrimSpace(file); len(file) != 0 {
			o.configFile = file
		}
	}
}

// WithEnvPrefix replaces DefaultEnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *opts) {
		if prefix = strings.TrimSpace(prefix); len(prefix) != 0 {
			o.envPrefix = prefix
		}
	}
}

// WithOverrides sets values with the highest precedence, keys are
// dotted koanf paths like "log.level".
func WithOverrides(values map[string]any) Option {
	return func(o *opts) {
		if len(values) != 0 {
			o.overrides = values
		}
	}
}

// Load builds the configuration from, in increasing precedence: the
// defaults, the YAML file, the environment and the overrides.
func Load(options ...Option) (Configuration, error) {
	o := opts{envPrefix: DefaultEnvPrefix}
	for _, opt := range options {
		opt(&o)
	}

	result := Default()

	parser := koanf.New(".")
	if err := parser.Load(structs.Provider(result, "koanf"), nil); err != nil {
		return result, fmt.Errorf("%w: failed to load defaults: %w", ErrConfiguration, err)
	}

	if len(o.configFile) != 0 {
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return result, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		if err := parser.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return result, fmt.Errorf("%w: failed to load yaml config from %s: %w", ErrConfiguration, o.configFile, err)
		}
	}

	if err := parser.Load(envProvider(o.envPrefix), nil); err != nil {
		return result, fmt.Errorf("%w: failed to parse environment variables: %w", ErrConfiguration, err)
	}

	if o.overrides != nil {
		if err := parser.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return result, fmt.Errorf("%w: failed to load overrides: %w", ErrConfiguration, err)
		}
	}

	err := parser.UnmarshalWithConf("", &result, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &result,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return result, nil
}

// envProvider maps RADIXQ_LOG_LEVEL to log.level.
func envProvider(prefix string) *env.Env {
	return env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, prefix))
			return strings.ReplaceAll(key, "_", "."), val
		},
	})
}
