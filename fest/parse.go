// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fest

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/someonegg/jugglefest"
)

// Load parses the file at path.
func Load(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	input, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return input, nil
}

// Parse reads circuit and juggler lines:
//
//	C C0 H:7 E:7 P:10
//	J J0 H:3 E:9 P:2 C2,C0,C1
//
// Blank lines are ignored. Preferences may name circuits declared later
// in the input.
func Parse(r io.Reader) (*Input, error) {
	input := &Input{circuitIndex: make(map[string]int)}
	jugglerLines := make(map[string]int)
	var prefLines []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "C":
			if len(fields) != 5 {
				return nil, errors.Errorf("line %d: circuit wants 5 fields, got %d", line, len(fields))
			}
			name := fields[1]
			if _, dup := input.circuitIndex[name]; dup {
				return nil, errors.Errorf("line %d: duplicate circuit %s", line, name)
			}
			weights, err := parseAttributes(fields[2:5])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			input.circuitIndex[name] = len(input.Circuits)
			input.Circuits = append(input.Circuits, Circuit{Name: name, Weights: weights})

		case "J":
			if len(fields) != 6 {
				return nil, errors.Errorf("line %d: juggler wants 6 fields, got %d", line, len(fields))
			}
			name := fields[1]
			if _, dup := jugglerLines[name]; dup {
				return nil, errors.Errorf("line %d: duplicate juggler %s", line, name)
			}
			skills, err := parseAttributes(fields[2:5])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			prefs := strings.Split(fields[5], ",")
			for _, pref := range prefs {
				if pref == "" {
					return nil, errors.Errorf("line %d: empty preference", line)
				}
			}
			jugglerLines[name] = line
			prefLines = append(prefLines, line)
			input.Jugglers = append(input.Jugglers, Juggler{Name: name, Skills: skills, Preferences: prefs})

		default:
			return nil, errors.Errorf("line %d: unknown record type %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	for i, j := range input.Jugglers {
		for _, pref := range j.Preferences {
			if _, ok := input.circuitIndex[pref]; !ok {
				return nil, errors.Errorf("line %d: juggler %s prefers unknown circuit %s", prefLines[i], j.Name, pref)
			}
		}
	}

	return input, nil
}

// parseAttributes accepts H, E and P once each, in any order.
func parseAttributes(fields []string) (jugglefest.Attributes, error) {
	var attrs jugglefest.Attributes
	seen := make(map[string]bool, 3)

	for _, field := range fields {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return attrs, errors.Errorf("malformed attribute %q", field)
		}
		if seen[key] {
			return attrs, errors.Errorf("duplicate attribute %s", key)
		}
		seen[key] = true

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return attrs, errors.Wrapf(err, "attribute %s", key)
		}
		switch key {
		case "H":
			attrs.Coordination = v
		case "E":
			attrs.Endurance = v
		case "P":
			attrs.Pizzazz = v
		default:
			return attrs, errors.Errorf("unknown attribute %q", key)
		}
	}

	return attrs, nil
}

// Facilities converts the circuits to matcher input, ids in load order.
func (in *Input) Facilities() []jugglefest.Facility {
	facilities := make([]jugglefest.Facility, len(in.Circuits))
	for i, c := range in.Circuits {
		facilities[i] = jugglefest.Facility{ID: i, Weights: c.Weights}
	}
	return facilities
}

func (in *Input) Participants() []jugglefest.Participant {
	index := in.index()
	participants := make([]jugglefest.Participant, len(in.Jugglers))
	for i, j := range in.Jugglers {
		prefs := make([]int, len(j.Preferences))
		for n, pref := range j.Preferences {
			id, ok := index[pref]
			if !ok {
				id = -1 // rejected by the matcher
			}
			prefs[n] = id
		}
		participants[i] = jugglefest.Participant{ID: i, Skills: j.Skills, Preferences: prefs}
	}
	return participants
}

// index tolerates inputs built by hand or decoded from JSON.
func (in *Input) index() map[string]int {
	if in.circuitIndex != nil && len(in.circuitIndex) == len(in.Circuits) {
		return in.circuitIndex
	}
	index := make(map[string]int, len(in.Circuits))
	for i, c := range in.Circuits {
		index[c.Name] = i
	}
	in.circuitIndex = index
	return index
}
