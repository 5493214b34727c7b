// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/someonegg/jugglefest/triangle"
)

func doTriangle(file string, stdout io.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "open triangle file failed")
	}
	defer f.Close()

	rows, err := triangle.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parse %s", file)
	}

	sum, err := triangle.MaxPathSum(rows)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, sum)
	return nil
}
