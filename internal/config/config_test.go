// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0, cfg.Matcher.MaxRounds)
	require.Equal(t, "desc", cfg.Output.Order)
	require.Empty(t, cfg.Metrics.File)
}

func TestDecode_Overlay(t *testing.T) {
	doc := `
matcher:
  max_rounds: 500
log:
  level: debug
output:
  format: json
metrics:
  file: /tmp/jugglefest.prom
`
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(doc), &cfg))

	require.Equal(t, 500, cfg.Matcher.MaxRounds)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "desc", cfg.Output.Order)
	require.Equal(t, "/tmp/jugglefest.prom", cfg.Metrics.File)
	require.Equal(t, "jugglefest", cfg.Metrics.Namespace)
}

func TestDecode_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(""), &cfg))
	require.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"NegativeRounds": "matcher:\n  max_rounds: -1\n",
		"BadLevel":       "log:\n  level: loud\n",
		"BadLogFormat":   "log:\n  format: xml\n",
		"BadOutput":      "output:\n  format: csv\n",
		"BadOrder":       "output:\n  order: random\n",
		"NoNamespace":    "metrics:\n  file: out.prom\n  namespace: \"\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			require.ErrorIs(t, Decode(strings.NewReader(doc), &cfg), ErrInvalidConfig)
		})
	}

	t.Run("UnknownField", func(t *testing.T) {
		cfg := Default()
		err := Decode(strings.NewReader("matcher:\n  capacity: 3\n"), &cfg)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	file := filepath.Join(t.TempDir(), "jugglefest.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output:\n  order: asc\n"), 0o644))

	cfg, err = Load(file)
	require.NoError(t, err)
	require.Equal(t, "asc", cfg.Output.Order)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
