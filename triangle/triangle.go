// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangle computes the maximum top to bottom path sum of a
// number triangle.
package triangle

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotTriangular = errors.New("rows are not triangular")

// Parse reads one row per line, entries separated by whitespace. Blank
// lines are skipped.
func Parse(r io.Reader) ([][]int, error) {
	var rows [][]int

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read triangle")
	}

	return rows, nil
}

// MaxPathSum walks each row once, keeping the best sum that ends at every
// position. Row i must have i+1 entries; no rows sum to 0.
func MaxPathSum(rows [][]int) (int, error) {
	for i, row := range rows {
		if len(row) != i+1 {
			return 0, errors.Wrapf(ErrNotTriangular, "row %d has %d entries", i+1, len(row))
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}

	best := make([]int, len(rows))
	best[0] = rows[0][0]
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		// right to left so best[j-1] still holds the previous row
		best[i] = best[i-1] + row[i]
		for j := i - 1; j > 0; j-- {
			best[j] = row[j] + max(best[j], best[j-1])
		}
		best[0] += row[0]
	}

	answer := best[0]
	for _, v := range best[1:] {
		answer = max(answer, v)
	}
	return answer, nil
}
