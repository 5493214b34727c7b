// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics provides jugglefest.MetricsCollector implementations.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/someonegg/jugglefest"
)

const defaultNamespace = "jugglefest"

// PrometheusCollector records matching metrics. Collectors are registered
// on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	attempts      *prometheus.CounterVec
	rounds        prometheus.Counter
	displacements prometheus.Counter
	unsettled     prometheus.Gauge
	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

var _ jugglefest.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus uses prometheus.DefaultRegisterer when reg is nil.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "admission_attempts_total",
			Help:      "Admission attempts by outcome.",
		}, []string{"outcome"})

		p.rounds = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "rounds_total",
			Help:      "Completed matching rounds.",
		})

		p.displacements = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "displacements_total",
			Help:      "Members evicted by a stronger challenger.",
		})

		p.unsettled = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "unsettled_participants",
			Help:      "Participants left unsettled by the last round.",
		})

		p.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "runs_total",
			Help:      "Matching runs by result.",
		}, []string{"result"})

		p.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a matching run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		})

		p.reg.MustRegister(p.attempts, p.rounds, p.displacements, p.unsettled, p.runs, p.runDuration)
	})
}

func (p *PrometheusCollector) RecordAttempt(kind jugglefest.OutcomeKind) {
	p.ensureRegistered()
	p.attempts.WithLabelValues(kind.String()).Inc()
}

func (p *PrometheusCollector) RecordRound(unsettled, displacements int) {
	p.ensureRegistered()
	p.rounds.Inc()
	p.displacements.Add(float64(displacements))
	p.unsettled.Set(float64(unsettled))
}

func (p *PrometheusCollector) RecordRun(seconds float64, ok bool) {
	p.ensureRegistered()
	result := "success"
	if !ok {
		result = "failure"
	}
	p.runs.WithLabelValues(result).Inc()
	p.runDuration.Observe(seconds)
}
