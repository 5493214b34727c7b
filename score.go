// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import "math"

// Score is the dot product of a facility's weights and a participant's
// skills.
func Score(weights, skills Attributes) float64 {
	return weights.Coordination*skills.Coordination +
		weights.Endurance*skills.Endurance +
		weights.Pizzazz*skills.Pizzazz
}

// CapacityFor returns the uniform per facility capacity. The remainder of
// the division is not distributed.
func CapacityFor(population, facilities int) int {
	if facilities <= 0 || population <= 0 {
		return 0
	}
	return population / facilities
}

// Outranks reports whether a ranks strictly above b for the same
// facility. Equal scores go to the lower participant id.
func Outranks(a, b Member) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Participant < b.Participant
}

func (a Attributes) finite() bool {
	for _, v := range [...]float64{a.Coordination, a.Endurance, a.Pizzazz} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
