// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
)

var benchConfigRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// benchRow is one result line of a benchmark file.
type benchRow struct {
	config  map[string]string
	metrics map[string]float64
}

// ReadBenchmarks reads a file in the Go benchmark format and returns
// one row per benchmark result line.
//
// The dataset has a "name" column (without the "Benchmark" prefix and
// GOMAXPROCS suffix), an "iterations" column, one column per
// configuration key (from configuration lines, "/key:value" name
// components, and the "-N" GOMAXPROCS suffix as "gomaxprocs"), and one
// []float64 column per unit. Results missing a unit are NaN.
// Configuration columns are coerced to numbers where every value
// allows it.
func ReadBenchmarks(name string, r io.Reader) (*Dataset, error) {
	var rows []benchRow
	block := map[string]string{}
	configKeys := map[string]bool{"name": true, "iterations": true}
	units := map[string]bool{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := benchConfigRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		row, ok := parseBenchLine(line, block)
		if !ok {
			continue
		}
		for k := range row.config {
			configKeys[k] = true
		}
		for u := range row.metrics {
			units[u] = true
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	keys := []string{"name", "iterations"}
	for k := range configKeys {
		if k != "name" && k != "iterations" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys[2:])
	strs := make([][]string, len(rows))
	for i, row := range rows {
		strs[i] = make([]string, len(keys))
		for j, k := range keys {
			strs[i][j] = row.config[k]
		}
	}
	tb := table.NewBuilder(table.TableFromStrings(keys, strs, true))

	unitNames := make([]string, 0, len(units))
	for u := range units {
		unitNames = append(unitNames, u)
	}
	sort.Strings(unitNames)
	for _, u := range unitNames {
		col := make([]float64, len(rows))
		for i, row := range rows {
			v, ok := row.metrics[u]
			if !ok {
				v = math.NaN()
			}
			col[i] = v
		}
		tb.Add(u, col)
	}
	return New(name, tb.Done()), nil
}

func parseBenchLine(line string, block map[string]string) (benchRow, bool) {
	if !strings.HasPrefix(line, "Benchmark") {
		return benchRow{}, false
	}
	f := strings.Fields(line)
	if len(f) < 4 {
		return benchRow{}, false
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return benchRow{}, false
		}
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return benchRow{}, false
	}

	row := benchRow{config: map[string]string{}, metrics: map[string]float64{}}
	for k, v := range block {
		row.config[k] = v
	}
	row.config["iterations"] = f[1]

	name := strings.TrimPrefix(f[0], "Benchmark")
	if parts := strings.Split(name, "/"); len(parts) > 1 {
		name = parts[0]
		for _, part := range parts[1:] {
			if k, v, ok := strings.Cut(part, ":"); ok {
				row.config[k] = v
			}
		}
	} else if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			row.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	row.config["name"] = name
	if _, ok := row.config["gomaxprocs"]; !ok {
		row.config["gomaxprocs"] = "1"
	}

	for i := 2; i+2 <= len(f); i += 2 {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		row.metrics[f[i+1]] = v
	}
	return row, true
}
