// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fest

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type Order string

const (
	Descending Order = "desc"
	Ascending  Order = "asc"
)

// WriteText writes one line per circuit:
//
//	C2 J6 C2:128 C1:31 C0:188, J3 C0:120 C2:90 C1:10
//
// Descending order lists the last loaded circuit first.
func (r *Report) WriteText(w io.Writer, order Order) error {
	bw := bufio.NewWriter(w)

	n := len(r.Circuits)
	for i := 0; i < n; i++ {
		c := &r.Circuits[i]
		if order != Ascending {
			c = &r.Circuits[n-1-i]
		}

		var sb strings.Builder
		sb.WriteString(c.Name)
		for k, m := range c.Members {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte(' ')
			sb.WriteString(m.Name)
			for _, ps := range m.Scores {
				sb.WriteByte(' ')
				sb.WriteString(ps.Circuit)
				sb.WriteByte(':')
				sb.WriteString(formatScore(ps.Score))
			}
		}
		sb.WriteByte('\n')

		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "   ")
	return encoder.Encode(r)
}

// MemberIDSum adds up the numeric suffixes of the member names of a
// circuit, J12 counting as 12.
func (r *Report) MemberIDSum(circuit string) (int64, error) {
	for _, c := range r.Circuits {
		if c.Name != circuit {
			continue
		}
		var sum int64
		for _, m := range c.Members {
			digits := strings.TrimLeftFunc(m.Name, func(ch rune) bool {
				return !unicode.IsDigit(ch)
			})
			id, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				return 0, errors.Errorf("juggler %s has no numeric id", m.Name)
			}
			sum += id
		}
		return sum, nil
	}
	return 0, errors.Errorf("unknown circuit %s", circuit)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
