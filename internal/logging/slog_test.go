// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "text", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("matching started", "participants", 12)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "matching started")
	require.Contains(t, out, "participants=12")
}

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "json", "debug")
	require.NoError(t, err)

	logger.With("run_id", "abc").Debug("round finished", "round", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "round finished", record["msg"])
	require.Equal(t, "DEBUG", record["level"])
	require.Equal(t, "abc", record["run_id"])
	require.EqualValues(t, 3, record["round"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, "text", "verbose")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestSlogLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := NewSlog(slog.New(handler))

	logger.Info("dropped")
	logger.Warn("kept warn")
	logger.Error("kept error", "error", "boom")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept warn")
	require.Contains(t, out, "error=boom")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()
	require.NotPanics(t, func() {
		logger.Debug("x", "k", 1)
		logger.Info("x")
		logger.Warn("x")
		logger.Error("x", "error", nil)
	})
}
