// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
)

// ErrUndefined is returned when an expression names an unknown
// column or function.
var ErrUndefined = errors.New("undefined")

// Parse parses src into an Expr.
func Parse(src string) (Expr, error) {
	x, err := parser.ParseExprFrom(token.NewFileSet(), "", src, 0)
	if err != nil {
		return nil, err
	}
	var e Expr
	err = catch(func() {
		e = translate(x)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return e, nil
}

// MustParse is like Parse, but panics if src cannot be parsed.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// exprError is the panic value used by bad.
type exprError struct {
	err error
}

// bad panics with an exprError for the given message. It is recovered
// by catch.
func bad(format string, a ...interface{}) {
	panic(&exprError{fmt.Errorf(format, a...)})
}

// catch calls f and returns the error passed to bad, if any.
func catch(f func()) (err error) {
	defer func() {
		r := recover()
		if e, ok := r.(*exprError); ok {
			err = e.err
		} else if r != nil {
			panic(r)
		}
	}()
	f()
	return nil
}

func translate(x ast.Expr) Expr {
	switch x := x.(type) {
	case *ast.BasicLit:
		switch x.Kind {
		case token.INT, token.FLOAT, token.STRING:
			if constant.MakeFromLiteral(x.Value, x.Kind, 0).Kind() == constant.Unknown {
				bad("malformed literal %s", x.Value)
			}
			return &Lit{x.Kind, x.Value}
		}

	case *ast.Ident:
		switch x.Name {
		case "true", "false":
			return &Lit{token.IDENT, x.Name}
		}
		return &Ref{x.Name}

	case *ast.ParenExpr:
		return translate(x.X)

	case *ast.UnaryExpr:
		switch x.Op {
		case token.ADD, token.SUB, token.NOT:
			return &Unary{x.Op, translate(x.X)}
		}

	case *ast.BinaryExpr:
		switch x.Op {
		case token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
			token.LAND, token.LOR,
			token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
			return &Binary{x.Op, translate(x.X), translate(x.Y)}
		}

	case *ast.CallExpr:
		id, ok := x.Fun.(*ast.Ident)
		if !ok || x.Ellipsis.IsValid() {
			bad("bad call %s", types.ExprString(x))
		}
		if id.Name == "col" {
			if len(x.Args) != 1 {
				bad("col takes one argument")
			}
			lit, ok := x.Args[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				bad("col argument must be a string literal")
			}
			return &Ref{constant.StringVal(constant.MakeFromLiteral(lit.Value, lit.Kind, 0))}
		}
		nargs, ok := builtins[id.Name]
		if !ok {
			bad("%w: %s", ErrUndefined, id.Name)
		}
		if len(x.Args) != nargs {
			bad("%s takes %d argument(s), got %d", id.Name, nargs, len(x.Args))
		}
		args := make([]Expr, len(x.Args))
		for i, arg := range x.Args {
			args[i] = translate(arg)
		}
		return &Call{id.Name, args}
	}

	bad("unsupported expression %s", types.ExprString(x))
	return nil
}
