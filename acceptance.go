// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"fmt"

	"github.com/google/btree"
)

type OutcomeKind int

const (
	Rejected OutcomeKind = iota
	Admitted
	Displaced
)

func (k OutcomeKind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case Admitted:
		return "admitted"
	case Displaced:
		return "displaced"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

type Outcome struct {
	Kind    OutcomeKind
	Evicted Member // valid when Kind == Displaced
}

const btreeDegree = 8

// AcceptanceSet holds the members admitted to one facility, ordered from
// the weakest to the strongest. AttemptAdmit is the only way to change it.
type AcceptanceSet struct {
	facility int
	capacity int
	tree     *btree.BTreeG[Member]
}

func NewAcceptanceSet(facility, capacity int) *AcceptanceSet {
	return &AcceptanceSet{
		facility: facility,
		capacity: capacity,
		tree: btree.NewG(btreeDegree, func(a, b Member) bool {
			return Outranks(b, a)
		}),
	}
}

func (s *AcceptanceSet) Facility() int { return s.facility }
func (s *AcceptanceSet) Cap() int      { return s.capacity }
func (s *AcceptanceSet) Len() int      { return s.tree.Len() }

func (s *AcceptanceSet) Weakest() (Member, bool) {
	return s.tree.Min()
}

// AttemptAdmit inserts m when there is room, replaces the weakest member
// when m outranks it, and rejects m otherwise.
func (s *AcceptanceSet) AttemptAdmit(m Member) Outcome {
	if s.tree.Len() < s.capacity {
		s.insert(m)
		return Outcome{Kind: Admitted}
	}

	weakest, ok := s.tree.Min()
	if !ok || !Outranks(m, weakest) {
		return Outcome{Kind: Rejected}
	}

	s.tree.DeleteMin()
	s.insert(m)
	return Outcome{Kind: Displaced, Evicted: weakest}
}

func (s *AcceptanceSet) insert(m Member) {
	if _, dup := s.tree.ReplaceOrInsert(m); dup {
		panic(fmt.Sprintf("jugglefest: participant %d admitted twice to facility %d", m.Participant, s.facility))
	}
	if s.tree.Len() > s.capacity {
		panic(fmt.Sprintf("jugglefest: facility %d holds %d members, capacity %d", s.facility, s.tree.Len(), s.capacity))
	}
}

// Members returns the members strongest first.
func (s *AcceptanceSet) Members() []Member {
	members := make([]Member, 0, s.tree.Len())
	s.tree.Descend(func(m Member) bool {
		members = append(members, m)
		return true
	})
	return members
}
