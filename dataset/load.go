// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/itchyny/gojq"
)

// ReadCSV reads a CSV file with a header row from r. Columns whose
// values all parse as integers become []int, columns whose values all
// parse as numbers become []float64, and all others are []string.
func ReadCSV(name string, r io.Reader) (*Dataset, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: missing header row", name)
	}
	return New(name, table.TableFromStrings(rows[0], rows[1:], true)), nil
}

// ReadJSON reads a JSON document from r and runs the jq program query
// on it. Each value produced by query must be an object and becomes
// one row; the object's keys name the columns. If query is "", it is
// treated as ".[]", which expects a top-level array of objects.
func ReadJSON(name string, r io.Reader, query string) (*Dataset, error) {
	if query == "" {
		query = ".[]"
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing jq query: %w", name, err)
	}
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var cb columnBuilder
	iter := q.Run(doc)
	for row := 0; ; row++ {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		obj, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: jq result %d is %T, not an object", name, row, v)
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		cb.startRow()
		for _, k := range keys {
			cb.set(k, obj[k])
		}
	}
	return New(name, cb.done()), nil
}

// columnBuilder accumulates loosely typed rows and produces a table
// with the most specific column types that hold every value.
type columnBuilder struct {
	names []string
	cols  map[string][]interface{}
	rows  int
}

func (b *columnBuilder) startRow() {
	b.rows++
	for _, name := range b.names {
		b.cols[name] = append(b.cols[name], nil)
	}
}

// declare adds column name if it does not exist yet. Existing rows
// are missing a value for the new column.
func (b *columnBuilder) declare(name string) {
	if b.cols == nil {
		b.cols = make(map[string][]interface{})
	}
	if _, ok := b.cols[name]; !ok {
		b.names = append(b.names, name)
		b.cols[name] = make([]interface{}, b.rows)
	}
}

// set sets column name of the current row to v.
func (b *columnBuilder) set(name string, v interface{}) {
	b.declare(name)
	col := b.cols[name]
	switch x := v.(type) {
	case []byte:
		v = string(x)
	case time.Time:
		v = x.Format(time.RFC3339Nano)
	case int:
		v = int64(x)
	case int32:
		v = int64(x)
	case float32:
		v = float64(x)
	}
	col[len(col)-1] = v
}

func (b *columnBuilder) done() *table.Table {
	tb := table.NewBuilder(nil)
	for _, name := range b.names {
		tb.Add(name, convertColumn(b.cols[name]))
	}
	return tb.Done()
}

// convertColumn picks the narrowest slice type for vals. nil values
// are missing; they become NaN in numeric columns and "" in string
// columns.
func convertColumn(vals []interface{}) table.Slice {
	var numbers, fracs, bools, others, missing int
	for _, v := range vals {
		switch x := v.(type) {
		case nil:
			missing++
		case int64:
			numbers++
		case float64:
			numbers++
			if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
				fracs++
			}
		case bool:
			bools++
		default:
			others++
		}
	}

	switch {
	case numbers > 0 && bools == 0 && others == 0:
		if fracs == 0 && missing == 0 {
			out := make([]int, len(vals))
			for i, v := range vals {
				switch x := v.(type) {
				case int64:
					out[i] = int(x)
				case float64:
					out[i] = int(x)
				}
			}
			return out
		}
		out := make([]float64, len(vals))
		for i, v := range vals {
			switch x := v.(type) {
			case int64:
				out[i] = float64(x)
			case float64:
				out[i] = x
			default:
				out[i] = math.NaN()
			}
		}
		return out

	case bools > 0 && numbers == 0 && others == 0 && missing == 0:
		out := make([]bool, len(vals))
		for i, v := range vals {
			out[i] = v.(bool)
		}
		return out
	}

	out := make([]string, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
		case string:
			out[i] = x
		case float64:
			out[i] = strconv.FormatFloat(x, 'g', -1, 64)
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}
