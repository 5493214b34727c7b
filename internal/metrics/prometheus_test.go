// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/jugglefest"
)

func TestPrometheusCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "")

	p.RecordAttempt(jugglefest.Admitted)
	p.RecordAttempt(jugglefest.Admitted)
	p.RecordAttempt(jugglefest.Rejected)
	p.RecordAttempt(jugglefest.Displaced)
	p.RecordRound(3, 2)
	p.RecordRound(0, 1)
	p.RecordRun(0.01, true)

	require.InDelta(t, 2, testutil.ToFloat64(p.attempts.WithLabelValues("admitted")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.attempts.WithLabelValues("rejected")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.attempts.WithLabelValues("displaced")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(p.rounds), 0)
	require.InDelta(t, 3, testutil.ToFloat64(p.displacements), 0)
	require.InDelta(t, 0, testutil.ToFloat64(p.unsettled), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.runs.WithLabelValues("success")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "jugglefest_matcher_rounds_total")
	require.Contains(t, names, "jugglefest_matcher_run_duration_seconds")
}

func TestPrometheusCollector_WithDriver(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	facilities := []jugglefest.Facility{
		{ID: 0, Weights: jugglefest.Attributes{Coordination: 1}},
		{ID: 1, Weights: jugglefest.Attributes{Endurance: 1}},
	}
	participants := []jugglefest.Participant{
		{ID: 0, Skills: jugglefest.Attributes{Coordination: 1}, Preferences: []int{0}},
		{ID: 1, Skills: jugglefest.Attributes{Coordination: 2}, Preferences: []int{0}},
	}

	result, err := jugglefest.DisplacementMatcher(jugglefest.WithMetrics(p)).Match(facilities, participants)
	require.NoError(t, err)

	require.InDelta(t, float64(result.Stats.Rounds), testutil.ToFloat64(p.rounds), 0)
	require.InDelta(t, float64(result.Stats.Displacements), testutil.ToFloat64(p.displacements), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.runs.WithLabelValues("success")), 0)
	require.Equal(t, 1, testutil.CollectAndCount(p.runDuration))
}

func TestPrometheusCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "once")

	require.NotPanics(t, func() {
		p.RecordRun(1, false)
		p.RecordRun(2, false)
	})
	require.InDelta(t, 2, testutil.ToFloat64(p.runs.WithLabelValues("failure")), 0)
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	require.NotPanics(t, func() {
		m.RecordAttempt(jugglefest.Rejected)
		m.RecordRound(-1, -1)
		m.RecordRun(0, true)
	})
}
