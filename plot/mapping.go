// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/ggdecl/dataset"
	"github.com/aclements/ggdecl/element"
	"github.com/aclements/ggdecl/expr"
)

// ErrBadMappingValue is returned for a mapping value that is not a
// column name, column position, or expression.
var ErrBadMappingValue = errors.New("mapping value must be a column name, column position, or expression")

// A Value is the source of one aesthetic's values: a Column, a
// Position, or an Expression.
type Value interface {
	// String returns the value's source text, which is used as the
	// title of the aesthetic.
	String() string

	isValue()
}

// Column names a dataset column.
type Column string

// Position selects a dataset column by its 0-based index.
type Position int

// Expression computes values row by row.
type Expression struct {
	Expr expr.Expr
}

func (c Column) String() string     { return string(c) }
func (p Position) String() string   { return strconv.Itoa(int(p)) }
func (e Expression) String() string { return e.Expr.String() }

func (Column) isValue()     {}
func (Position) isValue()   {}
func (Expression) isValue() {}

// Expr parses src as an Expression.
func Expr(src string) (Expression, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return Expression{}, err
	}
	return Expression{e}, nil
}

// ValueOf converts a loosely typed value to a Value. Strings become
// Columns, integers become Positions, and expr.Exprs become
// Expressions. Any other kind is an error wrapping
// ErrBadMappingValue.
func ValueOf(v interface{}) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case string:
		return Column(v), nil
	case int:
		return Position(v), nil
	case int64:
		return Position(v), nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return Position(v), nil
		}
	case expr.Expr:
		return Expression{v}, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrBadMappingValue, v)
}

// Mapping binds aesthetics to the source of their values.
type Mapping map[element.Aes]Value

// M builds a Mapping from alternating aesthetic names and values,
// converting values with ValueOf. It panics on error and is meant for
// literal mappings in code and tests.
func M(kv ...interface{}) Mapping {
	if len(kv)%2 != 0 {
		panic("plot.M: odd number of arguments")
	}
	m := Mapping{}
	for i := 0; i < len(kv); i += 2 {
		var a element.Aes
		switch k := kv[i].(type) {
		case element.Aes:
			a = k
		case string:
			a = element.Aes(k)
		default:
			panic(fmt.Sprintf("plot.M: bad aesthetic %v", kv[i]))
		}
		v, err := ValueOf(kv[i+1])
		if err != nil {
			panic(err)
		}
		m[a] = v
	}
	return m
}

// Aes returns the aesthetics of m, sorted.
func (m Mapping) Aes() []element.Aes {
	as := make([]element.Aes, 0, len(m))
	for a := range m {
		as = append(as, a)
	}
	return element.SortAes(as)
}

// Equal reports whether m and o bind the same aesthetics to equal
// values. Expressions are compared structurally.
func (m Mapping) Equal(o Mapping) bool {
	if len(m) != len(o) {
		return false
	}
	for a, v := range m {
		w, ok := o[a]
		if !ok {
			return false
		}
		ve, vok := v.(Expression)
		we, wok := w.(Expression)
		switch {
		case vok && wok:
			if !expr.Equal(ve.Expr, we.Expr) {
				return false
			}
		case vok != wok || v != w:
			return false
		}
	}
	return true
}

// EvalMapping resolves each aesthetic of m against ds. It fails if an
// aesthetic cannot be mapped, a column does not exist, or an
// expression refers to an undefined name.
func EvalMapping(m Mapping, ds *dataset.Dataset) (*element.Data, error) {
	d := element.NewData()
	for _, a := range m.Aes() {
		if err := element.CheckMappable(a); err != nil {
			return nil, err
		}
		if m[a] == nil {
			return nil, fmt.Errorf("aesthetic %s: %w: got nil", a, ErrBadMappingValue)
		}
		if ds == nil {
			return nil, fmt.Errorf("aesthetic %s: mapping with no dataset", a)
		}
		var (
			v     table.Slice
			title = m[a].String()
			err   error
		)
		switch val := m[a].(type) {
		case Column:
			v, err = ds.Column(string(val))
		case Position:
			title, v, err = ds.ColumnAt(int(val))
		case Expression:
			v, err = expr.Eval(val.Expr, ds)
		default:
			err = fmt.Errorf("%w: got %T", ErrBadMappingValue, val)
		}
		if err != nil {
			return nil, fmt.Errorf("aesthetic %s: %w", a, err)
		}
		d.Set(a, v, title)
	}
	return d, nil
}
