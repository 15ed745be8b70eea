// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/radix/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		conf   config.LoggingConfig
		assert func(t *testing.T, out string)
	}{
		{
			uc:   "text format",
			conf: config.LoggingConfig{Level: zerolog.InfoLevel, Format: config.LogTextFormat},
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "INF")
				assert.Contains(t, out, "index loaded")
				assert.Contains(t, out, "entries=3")
				assert.NotContains(t, out, "DBG")
			},
		},
		{
			uc:   "json format",
			conf: config.LoggingConfig{Level: zerolog.InfoLevel, Format: config.LogJSONFormat},
			assert: func(t *testing.T, out string) {
				t.Helper()

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "index loaded", entry["message"])
				assert.InDelta(t, 3, entry["entries"], 0)
				assert.Contains(t, entry, "time")
			},
		},
		{
			uc:   "level filters",
			conf: config.LoggingConfig{Level: zerolog.WarnLevel, Format: config.LogJSONFormat},
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Empty(t, out)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			logger := NewLogger(tc.conf, buf)

			logger.Debug().Msg("debug only")
			logger.Info().Int("entries", 3).Msg("index loaded")

			tc.assert(t, buf.String())
		})
	}
}
