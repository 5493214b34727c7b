// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

type Option func(*options)

type options struct {
	maxRounds int // 0 means derived from the input size
	logger    Logger
	metrics   MetricsCollector
	hooks     Hooks
}

// WithMaxRounds overrides the round ceiling. The default,
// population*(facilities+1)+2, is never reached: a participant is evicted
// from a given facility at most once and free slots only fill up, so the
// driver terminates or detects a stall before it.
func WithMaxRounds(n int) Option {
	return func(o *options) {
		o.maxRounds = n
	}
}

func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

func WithHooks(hooks Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

func defaultMaxRounds(population, facilities int) int {
	return population*(facilities+1) + 2
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type nopMetrics struct{}

func (nopMetrics) RecordAttempt(OutcomeKind) {}
func (nopMetrics) RecordRound(int, int)      {}
func (nopMetrics) RecordRun(float64, bool)   {}
