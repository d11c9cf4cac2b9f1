// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"go/constant"
	"go/token"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// Columns is a source of equal-length columns.
type Columns interface {
	// Column returns the values of the named column, or an error
	// if there is no such column.
	Column(name string) (table.Slice, error)

	// Len returns the number of rows.
	Len() int
}

// Eval evaluates e for every row of cols and returns the results as a
// []int, []float64, []string, or []bool. A bare column reference
// evaluates to the column itself.
func Eval(e Expr, cols Columns) (table.Slice, error) {
	if ref, ok := e.(*Ref); ok {
		col, err := cols.Column(ref.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUndefined, err)
		}
		return col, nil
	}

	var res table.Slice
	err := catch(func() {
		c := &compiler{cols: cols}
		n := c.node(e)
		rows := cols.Len()
		switch n := n.(type) {
		case intNode:
			out := make([]int, rows)
			for i := range out {
				out[i] = int(n(i))
			}
			res = out
		case floatNode:
			out := make([]float64, rows)
			for i := range out {
				out[i] = n(i)
			}
			res = out
		case stringNode:
			out := make([]string, rows)
			for i := range out {
				out[i] = n(i)
			}
			res = out
		case boolNode:
			out := make([]bool, rows)
			for i := range out {
				out[i] = n(i)
			}
			res = out
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e, err)
	}
	return res, nil
}

type compiler struct {
	cols Columns
}

// node is a compiled expression. It is one of the typed function
// types below; each evaluates the expression for row i.
type node interface {
	typ() string
}

type (
	intNode    func(i int) int64
	floatNode  func(i int) float64
	stringNode func(i int) string
	boolNode   func(i int) bool
)

func (intNode) typ() string    { return "int" }
func (floatNode) typ() string  { return "float" }
func (stringNode) typ() string { return "string" }
func (boolNode) typ() string   { return "bool" }

// float returns n as a floatNode, converting integers.
func (c *compiler) float(e Expr, n node) floatNode {
	switch n := n.(type) {
	case floatNode:
		return n
	case intNode:
		return func(i int) float64 { return float64(n(i)) }
	}
	bad("want number, but %s has type %s", e, n.typ())
	return nil
}

func (c *compiler) bool(e Expr, n node) boolNode {
	fn, ok := n.(boolNode)
	if !ok {
		bad("want bool, but %s has type %s", e, n.typ())
	}
	return fn
}

func isNumber(n node) bool {
	switch n.(type) {
	case intNode, floatNode:
		return true
	}
	return false
}

func (c *compiler) node(e Expr) node {
	switch e := e.(type) {
	case *Lit:
		if e.Kind == token.IDENT {
			b := e.Value == "true"
			return boolNode(func(int) bool { return b })
		}
		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		switch e.Kind {
		case token.INT:
			x, exact := constant.Int64Val(v)
			if !exact {
				bad("integer literal %s overflows", e.Value)
			}
			return intNode(func(int) int64 { return x })
		case token.FLOAT:
			x, _ := constant.Float64Val(v)
			return floatNode(func(int) float64 { return x })
		case token.STRING:
			s := constant.StringVal(v)
			return stringNode(func(int) string { return s })
		}

	case *Ref:
		col, err := c.cols.Column(e.Name)
		if err != nil {
			bad("%w: %w", ErrUndefined, err)
		}
		return columnNode(col)

	case *Unary:
		x := c.node(e.X)
		switch e.Op {
		case token.ADD:
			if !isNumber(x) {
				bad("want number, but %s has type %s", e.X, x.typ())
			}
			return x
		case token.SUB:
			if x, ok := x.(intNode); ok {
				return intNode(func(i int) int64 { return -x(i) })
			}
			fx := c.float(e.X, x)
			return floatNode(func(i int) float64 { return -fx(i) })
		case token.NOT:
			bx := c.bool(e.X, x)
			return boolNode(func(i int) bool { return !bx(i) })
		}

	case *Binary:
		return c.binary(e)

	case *Call:
		return c.call(e)
	}
	bad("unsupported expression %s", e)
	return nil
}

func (c *compiler) binary(e *Binary) node {
	x, y := c.node(e.X), c.node(e.Y)
	switch e.Op {
	case token.LAND, token.LOR:
		bx, by := c.bool(e.X, x), c.bool(e.Y, y)
		if e.Op == token.LAND {
			return boolNode(func(i int) bool { return bx(i) && by(i) })
		}
		return boolNode(func(i int) bool { return bx(i) || by(i) })

	case token.ADD, token.SUB, token.MUL, token.QUO, token.REM:
		if sx, ok := x.(stringNode); ok && e.Op == token.ADD {
			sy, ok := y.(stringNode)
			if !ok {
				bad("operands of %s must have same type, not %s and %s", e, x.typ(), y.typ())
			}
			return stringNode(func(i int) string { return sx(i) + sy(i) })
		}
		ix, xok := x.(intNode)
		iy, yok := y.(intNode)
		if xok && yok {
			return intArith(e.Op, ix, iy)
		}
		fx, fy := c.float(e.X, x), c.float(e.Y, y)
		return floatArith(e.Op, fx, fy)

	case token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
		switch {
		case isNumber(x) && isNumber(y):
			fx, fy := c.float(e.X, x), c.float(e.Y, y)
			return boolNode(func(i int) bool { return compare(e.Op, fx(i), fy(i)) })
		case x.typ() == "string" && y.typ() == "string":
			sx, sy := x.(stringNode), y.(stringNode)
			return boolNode(func(i int) bool { return compareStrings(e.Op, sx(i), sy(i)) })
		case x.typ() == "bool" && y.typ() == "bool" && (e.Op == token.EQL || e.Op == token.NEQ):
			bx, by := x.(boolNode), y.(boolNode)
			eq := e.Op == token.EQL
			return boolNode(func(i int) bool { return (bx(i) == by(i)) == eq })
		}
		bad("cannot compare %s and %s in %s", x.typ(), y.typ(), e)
	}
	bad("unsupported operator %s", e.Op)
	return nil
}

func intArith(op token.Token, x, y intNode) intNode {
	switch op {
	case token.ADD:
		return func(i int) int64 { return x(i) + y(i) }
	case token.SUB:
		return func(i int) int64 { return x(i) - y(i) }
	case token.MUL:
		return func(i int) int64 { return x(i) * y(i) }
	case token.QUO:
		return func(i int) int64 {
			d := y(i)
			if d == 0 {
				bad("integer division by zero")
			}
			return x(i) / d
		}
	}
	return func(i int) int64 {
		d := y(i)
		if d == 0 {
			bad("integer division by zero")
		}
		return x(i) % d
	}
}

func floatArith(op token.Token, x, y floatNode) floatNode {
	switch op {
	case token.ADD:
		return func(i int) float64 { return x(i) + y(i) }
	case token.SUB:
		return func(i int) float64 { return x(i) - y(i) }
	case token.MUL:
		return func(i int) float64 { return x(i) * y(i) }
	case token.QUO:
		return func(i int) float64 { return x(i) / y(i) }
	}
	return func(i int) float64 { return math.Mod(x(i), y(i)) }
}

func compare(op token.Token, x, y float64) bool {
	switch op {
	case token.EQL:
		return x == y
	case token.NEQ:
		return x != y
	case token.LSS:
		return x < y
	case token.GTR:
		return x > y
	case token.LEQ:
		return x <= y
	}
	return x >= y
}

func compareStrings(op token.Token, x, y string) bool {
	switch op {
	case token.EQL:
		return x == y
	case token.NEQ:
		return x != y
	case token.LSS:
		return x < y
	case token.GTR:
		return x > y
	case token.LEQ:
		return x <= y
	}
	return x >= y
}

func (c *compiler) call(e *Call) node {
	x := c.node(e.Args[0])
	if e.Fun == "str" {
		switch x := x.(type) {
		case stringNode:
			return x
		case intNode:
			return stringNode(func(i int) string { return strconv.FormatInt(x(i), 10) })
		case floatNode:
			return stringNode(func(i int) string { return strconv.FormatFloat(x(i), 'g', -1, 64) })
		case boolNode:
			return stringNode(func(i int) string { return strconv.FormatBool(x(i)) })
		}
	}
	if ix, ok := x.(intNode); ok && e.Fun == "abs" {
		return intNode(func(i int) int64 {
			if v := ix(i); v < 0 {
				return -v
			}
			return ix(i)
		})
	}
	var f func(float64) float64
	switch e.Fun {
	case "log":
		f = math.Log
	case "log10":
		f = math.Log10
	case "sqrt":
		f = math.Sqrt
	case "abs":
		f = math.Abs
	case "exp":
		f = math.Exp
	default:
		bad("%w: %s", ErrUndefined, e.Fun)
	}
	fx := c.float(e.Args[0], x)
	return floatNode(func(i int) float64 { return f(fx(i)) })
}

// columnNode returns a node that reads col, which must be a slice.
func columnNode(col table.Slice) node {
	switch col := col.(type) {
	case []float64:
		return floatNode(func(i int) float64 { return col[i] })
	case []int:
		return intNode(func(i int) int64 { return int64(col[i]) })
	case []string:
		return stringNode(func(i int) string { return col[i] })
	case []bool:
		return boolNode(func(i int) bool { return col[i] })
	}
	v := reflect.ValueOf(col)
	if v.Kind() != reflect.Slice {
		bad("column of type %T is not a slice", col)
	}
	switch v.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intNode(func(i int) int64 { return v.Index(i).Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return intNode(func(i int) int64 { return int64(v.Index(i).Uint()) })
	case reflect.Float32, reflect.Float64:
		return floatNode(func(i int) float64 { return v.Index(i).Float() })
	case reflect.String:
		return stringNode(func(i int) string { return v.Index(i).String() })
	case reflect.Bool:
		return boolNode(func(i int) bool { return v.Index(i).Bool() })
	}
	return stringNode(func(i int) string { return fmt.Sprint(v.Index(i).Interface()) })
}
