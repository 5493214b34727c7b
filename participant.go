// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

const unassigned = -1

// record is the mutable placement state of one participant. The driver
// addresses records and acceptance sets by id only.
type record struct {
	skills Attributes
	prefs  []int

	settled  bool
	cursor   int // next preference to try, len(prefs) once exhausted
	assigned int
}

func newRecord(p Participant) record {
	prefs := make([]int, len(p.Preferences))
	copy(prefs, p.Preferences)
	return record{
		skills:   p.Skills,
		prefs:    prefs,
		assigned: unassigned,
	}
}

func (r *record) exhausted() bool {
	return r.cursor >= len(r.prefs)
}

func (r *record) next() int {
	return r.prefs[r.cursor]
}

func (r *record) advance() {
	if r.cursor < len(r.prefs) {
		r.cursor++
	}
}

func (r *record) settle(facility int) {
	r.settled = true
	r.assigned = facility
}

func (r *record) evict() {
	r.settled = false
	r.cursor = 0
	r.assigned = unassigned
}
