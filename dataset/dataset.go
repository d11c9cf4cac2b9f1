// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the column store that plots draw their
// values from.
//
// A Dataset is a named, immutable go-gg table. Datasets are compared
// by identity: two plots share data exactly when they hold the same
// *Dataset.
package dataset

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"
)

// ErrUnknownColumn is returned when a column is looked up by a name
// or position the dataset does not have.
var ErrUnknownColumn = errors.New("unknown column")

// Dataset is a named table of equal-length columns.
type Dataset struct {
	name string
	t    *table.Table
}

// New returns a Dataset backed by t. t must not be modified
// afterwards. If t is nil, the dataset has no columns.
func New(name string, t *table.Table) *Dataset {
	if t == nil {
		t = new(table.Table)
	}
	return &Dataset{name, t}
}

// Name returns the dataset's name, which may be empty.
func (d *Dataset) Name() string {
	return d.name
}

// Table returns the underlying table.
func (d *Dataset) Table() *table.Table {
	return d.t
}

// Columns returns the names of d's columns in order.
func (d *Dataset) Columns() []string {
	return d.t.Columns()
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	return d.t.Len()
}

// Column returns the values of the named column.
func (d *Dataset) Column(name string) (table.Slice, error) {
	col := d.t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("%w %q in dataset %s", ErrUnknownColumn, name, d)
	}
	return col, nil
}

// ColumnAt returns the name and values of the i'th column (0-based).
func (d *Dataset) ColumnAt(i int) (string, table.Slice, error) {
	cols := d.t.Columns()
	if i < 0 || i >= len(cols) {
		return "", nil, fmt.Errorf("%w: position %d in dataset %s with %d columns", ErrUnknownColumn, i, d, len(cols))
	}
	return cols[i], d.t.Column(cols[i]), nil
}

func (d *Dataset) String() string {
	if d.name == "" {
		return "<unnamed>"
	}
	return d.name
}
