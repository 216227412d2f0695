// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-marks/plot"
)

// readCSV reads a CSV file with a header row into a table. Columns
// whose non-empty cells are all numbers become float64 columns, with
// NaN for empty cells. Other columns are strings.
func readCSV(r io.Reader) (*table.Table, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := recs[0], recs[1:]

	tab := new(table.Builder)
	seen := make(map[string]bool)
	for j, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true

		strs := make([]string, len(rows))
		nums := make([]float64, len(rows))
		numeric := true
		for i, row := range rows {
			strs[i] = row[j]
			if row[j] == "" {
				nums[i] = math.NaN()
				continue
			}
			f, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				numeric = false
			}
			nums[i] = f
		}
		if numeric {
			tab.Add(name, nums)
		} else {
			tab.Add(name, strs)
		}
	}
	return tab.Done(), nil
}

// toDataset converts t to records, dropping empty cells so they read
// as missing fields.
func toDataset(t table.Grouping) plot.Dataset {
	data := plot.FromTable(t)
	for _, d := range data {
		for k, v := range d {
			switch v := v.(type) {
			case string:
				if v == "" {
					delete(d, k)
				}
			case float64:
				if math.IsNaN(v) {
					delete(d, k)
				}
			}
		}
	}
	return data
}
