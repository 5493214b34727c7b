// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fest uses jugglefest to assign jugglers to circuits from the
// JuggleFest text format.
package fest

import "github.com/someonegg/jugglefest"

type Circuit struct {
	Name    string                `json:"name"`
	Weights jugglefest.Attributes `json:"weights"`
}

type Juggler struct {
	Name        string                `json:"name"`
	Skills      jugglefest.Attributes `json:"skills"`
	Preferences []string              `json:"prefs"`
}

type Input struct {
	Circuits []Circuit `json:"circuits"`
	Jugglers []Juggler `json:"jugglers"`

	circuitIndex map[string]int
}

type Report struct {
	Summary  Summary         `json:"summary"`
	Circuits []CircuitReport `json:"circuits"` // in load order
}

type CircuitReport struct {
	Name    string         `json:"name"`
	Members []MemberReport `json:"members"` // strongest first
}

type MemberReport struct {
	Name   string            `json:"name"`
	Score  float64           `json:"score"`
	Scores []PreferenceScore `json:"prefs"`
}

// PreferenceScore is a member's score against one circuit it listed.
type PreferenceScore struct {
	Circuit string  `json:"circuit"`
	Score   float64 `json:"score"`
}

type Summary struct {
	CircuitsCount      int `json:"circuits"`
	JugglersCount      int `json:"jugglers"`
	Capacity           int `json:"capacity"`
	Rounds             int `json:"rounds"`
	Attempts           int `json:"attempts"`
	Displacements      int `json:"displacements"`
	FallbackPlacements int `json:"fallback_placements"`
}
