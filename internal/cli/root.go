// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package cli implements the radixq commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaissmai/radix/internal/config"
	"github.com/gaissmai/radix/internal/index"
	"github.com/gaissmai/radix/internal/logging"
)

// Version of radixq, set by the linker.
var Version = "master"

// ErrNotFound is returned by queries without result.
var ErrNotFound = errors.New("not found")

// flag names
const (
	flagConfig    = "config"
	flagEnvPrefix = "env-prefix"
	flagInput     = "input"
	flagSplit     = "split"
	flagNormalize = "normalize"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// koanf paths of the flags overriding the configuration
var flagPaths = map[string]string{
	flagInput:     "input",
	flagSplit:     "split",
	flagNormalize: "normalize",
	flagLogLevel:  "log.level",
	flagLogFormat: "log.format",
}

// app is the state shared by the commands, built before a command runs.
type app struct {
	conf config.Configuration
	ix   *index.Index
}

// NewRootCommand returns the radixq command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:           "radixq",
		Short:         "Query word lists with a radix tree",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "Path to the YAML configuration file")
	flags.String(flagEnvPrefix, config.DefaultEnvPrefix, "Prefix of environment variables overriding the configuration")
	flags.StringSliceP(flagInput, "i", nil, "Word list files, one key or key<TAB>value per line")
	flags.String(flagSplit, "runes", "Split keys into runes or graphemes")
	flags.Bool(flagNormalize, false, "Normalize keys to NFC before splitting")
	flags.String(flagLogLevel, "info", "Log level")
	flags.String(flagLogFormat, "text", "Log format, text or json")

	cmd.AddCommand(
		newGetCommand(a),
		newPrefixCommand(a),
		newLongestCommand(a),
		newTreeCommand(a),
		newExportCommand(a),
		newStatsCommand(a),
	)

	return cmd
}

// setup loads the configuration, creates the logger and loads the index.
func (a *app) setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString(flagConfig)
	envPrefix, _ := cmd.Flags().GetString(flagEnvPrefix)

	overrides := make(map[string]any)
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		path, ok := flagPaths[flag.Name]
		if !ok {
			return
		}

		switch flag.Name {
		case flagInput:
			overrides[path], _ = cmd.Flags().GetStringSlice(flag.Name)
		case flagNormalize:
			overrides[path], _ = cmd.Flags().GetBool(flag.Name)
		default:
			overrides[path] = flag.Value.String()
		}
	})

	conf, err := config.Load(
		config.WithConfigFile(configFile),
		config.WithEnvPrefix(envPrefix),
		config.WithOverrides(overrides),
	)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().
		Strs("_input", conf.Input).
		Str("_split", conf.Split.String()).
		Bool("_normalize", conf.Normalize).
		Msg("Configuration loaded")

	if len(conf.Input) == 0 {
		return fmt.Errorf("%w: no input files, use --%s", config.ErrConfiguration, flagInput)
	}

	a.conf = conf
	a.ix = index.New(conf.Split, conf.Normalize)

	return a.ix.LoadFiles(cmd.Context(), conf.Input)
}
