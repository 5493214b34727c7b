// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"fmt"
	"time"
)

// Driver runs the displacement matching over a fixed population. It is
// not safe for concurrent use and may be run once.
type Driver struct {
	facilities []Facility
	sets       []*AcceptanceSet
	records    []record
	capacity   int

	maxRounds int
	logger    Logger
	metrics   MetricsCollector
	hooks     Hooks

	ran   bool
	round int
	stats Stats
}

func New(facilities []Facility, participants []Participant, opts ...Option) (*Driver, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxRounds < 0 {
		return nil, ErrInvalidMaxRounds
	}

	if err := validate(facilities, participants); err != nil {
		return nil, err
	}

	d := &Driver{
		facilities: make([]Facility, len(facilities)),
		sets:       make([]*AcceptanceSet, len(facilities)),
		records:    make([]record, len(participants)),
		capacity:   CapacityFor(len(participants), len(facilities)),
		maxRounds:  o.maxRounds,
		logger:     o.logger,
		metrics:    o.metrics,
		hooks:      o.hooks,
	}
	copy(d.facilities, facilities)
	for i := range d.sets {
		d.sets[i] = NewAcceptanceSet(i, d.capacity)
	}
	for i, p := range participants {
		d.records[i] = newRecord(p)
	}

	if d.maxRounds == 0 {
		d.maxRounds = defaultMaxRounds(len(participants), len(facilities))
	}
	if d.logger == nil {
		d.logger = nopLogger{}
	}
	if d.metrics == nil {
		d.metrics = nopMetrics{}
	}

	return d, nil
}

func validate(facilities []Facility, participants []Participant) error {
	if len(facilities) == 0 {
		return ErrNoFacilities
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}

	for i, f := range facilities {
		if f.ID != i {
			return &InputError{Facility: i, Participant: -1, Err: ErrInvalidID}
		}
		if !f.Weights.finite() {
			return &InputError{Facility: i, Participant: -1, Err: ErrInvalidAttributes}
		}
	}

	for i, p := range participants {
		if p.ID != i {
			return &InputError{Facility: -1, Participant: i, Err: ErrInvalidID}
		}
		if !p.Skills.finite() {
			return &InputError{Facility: -1, Participant: i, Err: ErrInvalidAttributes}
		}
		for _, pref := range p.Preferences {
			if pref < 0 || pref >= len(facilities) {
				return &InputError{
					Facility:    -1,
					Participant: i,
					Err:         fmt.Errorf("%w: %d", ErrInvalidPreference, pref),
				}
			}
		}
	}

	return nil
}

func (d *Driver) Capacity() int {
	return d.capacity
}

// Run places every participant or fails with an *InfeasibleError.
func (d *Driver) Run() (*Result, error) {
	if d.ran {
		return nil, ErrAlreadyRun
	}
	d.ran = true

	start := time.Now()
	result, err := d.run()
	d.metrics.RecordRun(time.Since(start).Seconds(), err == nil)
	if err != nil {
		d.logger.Error("matching failed", "error", err)
		return nil, err
	}

	d.logger.Info("matching finished",
		"rounds", d.stats.Rounds,
		"attempts", d.stats.Attempts,
		"displacements", d.stats.Displacements,
		"fallback_placements", d.stats.FallbackPlacements)
	return result, nil
}

func (d *Driver) run() (*Result, error) {
	d.logger.Info("matching started",
		"facilities", len(d.facilities),
		"participants", len(d.records),
		"capacity", d.capacity,
		"max_rounds", d.maxRounds)

	for {
		if d.round >= d.maxRounds {
			return nil, d.infeasible(ErrRoundLimit)
		}
		d.round++

		admissions, displacements := d.stats.Admissions, d.stats.Displacements
		for i := range d.records {
			if !d.records[i].settled {
				d.place(i)
			}
		}
		admissions = d.stats.Admissions - admissions
		displacements = d.stats.Displacements - displacements
		d.stats.Rounds = d.round

		unsettled := d.unsettled()
		d.metrics.RecordRound(len(unsettled), displacements)
		d.logger.Debug("round finished",
			"round", d.round,
			"admissions", admissions,
			"displacements", displacements,
			"unsettled", len(unsettled))

		if displacements == 0 && len(unsettled) == 0 {
			break
		}
		// Nothing moved, so the next round would replay this one.
		if admissions == 0 && displacements == 0 {
			return nil, d.infeasible(ErrInfeasible)
		}
	}

	return d.result(), nil
}

// place walks the participant's remaining preferences, then falls back to
// every facility in id order.
func (d *Driver) place(i int) {
	r := &d.records[i]
	for !r.exhausted() {
		if d.attempt(i, r.next()) {
			return
		}
		r.advance()
	}

	for f := range d.sets {
		if d.attempt(i, f) {
			d.stats.FallbackPlacements++
			return
		}
	}

	d.logger.Debug("participant rejected by every facility", "participant", i, "round", d.round)
}

func (d *Driver) attempt(i, f int) bool {
	r := &d.records[i]
	m := Member{Participant: i, Score: Score(d.facilities[f].Weights, r.skills)}

	out := d.sets[f].AttemptAdmit(m)
	d.stats.Attempts++
	d.metrics.RecordAttempt(out.Kind)

	switch out.Kind {
	case Admitted:
		d.stats.Admissions++
		r.settle(f)
	case Displaced:
		d.stats.Displacements++
		r.settle(f)
		d.records[out.Evicted.Participant].evict()
		if d.hooks.OnDisplacement != nil {
			weakest, _ := d.sets[f].Weakest()
			d.hooks.OnDisplacement(Displacement{
				Round:      d.round,
				Facility:   f,
				Challenger: i,
				Evicted:    out.Evicted.Participant,
				Weakest:    weakest,
			})
		}
	default:
		return false
	}
	return true
}

func (d *Driver) unsettled() []int {
	var ids []int
	for i := range d.records {
		if !d.records[i].settled {
			ids = append(ids, i)
		}
	}
	return ids
}

func (d *Driver) infeasible(cause error) error {
	return &InfeasibleError{
		Round:         d.round,
		TotalCapacity: d.capacity * len(d.sets),
		Population:    len(d.records),
		Unplaced:      d.unsettled(),
		Err:           cause,
	}
}

func (d *Driver) result() *Result {
	result := &Result{
		Capacity:  d.capacity,
		Placement: make([]int, len(d.records)),
		Members:   make([][]Member, len(d.sets)),
		Stats:     d.stats,
	}

	for i := range d.records {
		r := &d.records[i]
		if !r.settled || r.assigned == unassigned {
			panic(fmt.Sprintf("jugglefest: participant %d finished without a facility", i))
		}
		result.Placement[i] = r.assigned
	}

	for f, set := range d.sets {
		if set.Len() > set.Cap() {
			panic(fmt.Sprintf("jugglefest: facility %d over capacity", f))
		}
		result.Members[f] = set.Members()
	}

	return result
}
