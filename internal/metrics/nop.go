// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import "github.com/someonegg/jugglefest"

// NopMetrics discards all metrics.
type NopMetrics struct{}

var _ jugglefest.MetricsCollector = NopMetrics{}

func NewNop() NopMetrics {
	return NopMetrics{}
}

func (NopMetrics) RecordAttempt(jugglefest.OutcomeKind) {}

func (NopMetrics) RecordRound(int, int) {}

func (NopMetrics) RecordRun(float64, bool) {}
