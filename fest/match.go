// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/someonegg/jugglefest"
)

// Match assigns every juggler to a circuit.
func Match(in *Input, opts ...jugglefest.Option) (*Report, error) {
	facilities := in.Facilities()
	participants := in.Participants()

	result, err := jugglefest.DisplacementMatcher(opts...).Match(facilities, participants)
	if err != nil {
		var ie *jugglefest.InfeasibleError
		if errors.As(err, &ie) {
			names := make([]string, len(ie.Unplaced))
			for i, id := range ie.Unplaced {
				names[i] = in.Jugglers[id].Name
			}
			return nil, errors.Wrapf(err, "unplaced jugglers %s", strings.Join(names, ","))
		}
		return nil, errors.Wrap(err, "match jugglers")
	}

	return newReport(in, result), nil
}

func newReport(in *Input, result *jugglefest.Result) *Report {
	report := &Report{
		Summary: Summary{
			CircuitsCount:      len(in.Circuits),
			JugglersCount:      len(in.Jugglers),
			Capacity:           result.Capacity,
			Rounds:             result.Stats.Rounds,
			Attempts:           result.Stats.Attempts,
			Displacements:      result.Stats.Displacements,
			FallbackPlacements: result.Stats.FallbackPlacements,
		},
		Circuits: make([]CircuitReport, len(in.Circuits)),
	}

	index := in.index()
	for f, members := range result.Members {
		cr := CircuitReport{
			Name:    in.Circuits[f].Name,
			Members: make([]MemberReport, len(members)),
		}
		for n, m := range members {
			j := in.Jugglers[m.Participant]
			mr := MemberReport{
				Name:   j.Name,
				Score:  m.Score,
				Scores: make([]PreferenceScore, len(j.Preferences)),
			}
			for k, pref := range j.Preferences {
				mr.Scores[k] = PreferenceScore{
					Circuit: pref,
					Score:   jugglefest.Score(in.Circuits[index[pref]].Weights, j.Skills),
				}
			}
			cr.Members[n] = mr
		}
		report.Circuits[f] = cr
	}

	return report
}
