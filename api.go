// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jugglefest assigns participants to capacity bounded facilities.
// Each facility keeps the participants that score highest against it,
// participants walk their ordered preferences, and displaced participants
// retry until the assignment reaches a fixed point.
package jugglefest

type Matcher interface {
	Match(facilities []Facility, participants []Participant) (*Result, error)
}

// Attributes is the triple used both as facility weights and as
// participant skills.
type Attributes struct {
	Coordination float64 `json:"h"`
	Endurance    float64 `json:"e"`
	Pizzazz      float64 `json:"p"`
}

type Facility struct {
	ID      int        `json:"id"`
	Weights Attributes `json:"weights"`
}

type Participant struct {
	ID          int        `json:"id"`
	Skills      Attributes `json:"skills"`
	Preferences []int      `json:"prefs"` // facility ids, most preferred first
}

type Member struct {
	Participant int     `json:"participant"`
	Score       float64 `json:"score"`
}

type Result struct {
	Capacity  int        `json:"capacity"`
	Placement []int      `json:"placement"` // participant id -> facility id
	Members   [][]Member `json:"members"`   // facility id -> members, strongest first
	Stats     Stats      `json:"stats"`
}

type Stats struct {
	Rounds             int `json:"rounds"`
	Attempts           int `json:"attempts"`
	Admissions         int `json:"admissions"`
	Displacements      int `json:"displacements"`
	FallbackPlacements int `json:"fallback_placements"`
}

type Displacement struct {
	Round      int
	Facility   int
	Challenger int
	Evicted    int

	// Weakest is the facility's weakest member after the exchange.
	Weakest Member
}

type Hooks struct {
	// OnDisplacement is called synchronously from Run.
	OnDisplacement func(d Displacement)
}

// Logger is satisfied by zap.SugaredLogger and by the slog adapter in
// internal/logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type MetricsCollector interface {
	RecordAttempt(kind OutcomeKind)
	RecordRound(unsettled, displacements int)
	RecordRun(seconds float64, ok bool)
}

type displacementMatcher struct {
	opts []Option
}

func DisplacementMatcher(opts ...Option) Matcher {
	return displacementMatcher{opts}
}

func (m displacementMatcher) Match(facilities []Facility, participants []Participant) (*Result, error) {
	d, err := New(facilities, participants, m.opts...)
	if err != nil {
		return nil, err
	}
	return d.Run()
}
