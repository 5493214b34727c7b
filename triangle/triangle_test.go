// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMaxPathSum(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want int
	}{
		{"Empty", nil, 0},
		{"Single", [][]int{{7}}, 7},
		{"Two", [][]int{{1}, {2, 3}}, 4},
		{"Classic", [][]int{{5}, {9, 6}, {4, 6, 8}, {0, 7, 1, 5}}, 27},
		{"LeftEdge", [][]int{{1}, {9, 1}, {9, 1, 1}}, 19},
		{"RightEdge", [][]int{{1}, {1, 9}, {1, 1, 9}}, 19},
		{"Negative", [][]int{{-1}, {-2, -3}, {-9, -1, -9}}, -4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := MaxPathSum(c.rows)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestMaxPathSum_NotTriangular(t *testing.T) {
	_, err := MaxPathSum([][]int{{1}, {2, 3}, {4, 5}})
	require.Error(t, err)
	require.Equal(t, ErrNotTriangular, errors.Cause(err))
	require.Contains(t, err.Error(), "row 3 has 2 entries")

	_, err = MaxPathSum([][]int{{1, 2}})
	require.ErrorIs(t, err, ErrNotTriangular)
}

func TestParse(t *testing.T) {
	input := "5\n9 6\n\n4 6 8\n  0 7 1 5  \n"
	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]int{{5}, {9, 6}, {4, 6, 8}, {0, 7, 1, 5}}, rows)

	sum, err := MaxPathSum(rows)
	require.NoError(t, err)
	require.Equal(t, 27, sum)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("1\n2 x\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
