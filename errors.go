// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"errors"
	"fmt"
)

var (
	ErrNoFacilities      = errors.New("no facilities")
	ErrNoParticipants    = errors.New("no participants")
	ErrInvalidID         = errors.New("id does not match load order")
	ErrInvalidAttributes = errors.New("attributes must be finite")
	ErrInvalidPreference = errors.New("preference references an unknown facility")
	ErrInfeasible        = errors.New("participants cannot be placed within capacity")
	ErrRoundLimit        = errors.New("round limit exceeded")
	ErrAlreadyRun        = errors.New("driver already run")
	ErrInvalidMaxRounds  = errors.New("max rounds must be positive")
)

// InputError reports the record that failed validation. Facility or
// Participant is -1 when not applicable.
type InputError struct {
	Facility    int
	Participant int
	Err         error
}

func (e *InputError) Error() string {
	switch {
	case e.Participant >= 0:
		return fmt.Sprintf("participant %d: %v", e.Participant, e.Err)
	case e.Facility >= 0:
		return fmt.Sprintf("facility %d: %v", e.Facility, e.Err)
	}
	return e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// InfeasibleError is returned by Run when some participants stay unplaced.
type InfeasibleError struct {
	Round         int
	TotalCapacity int
	Population    int
	Unplaced      []int
	Err           error // ErrInfeasible or ErrRoundLimit
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v: round %d, capacity %d for %d participants, unplaced %v",
		e.Err, e.Round, e.TotalCapacity, e.Population, e.Unplaced)
}

func (e *InfeasibleError) Unwrap() error { return e.Err }
