// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the small expression language used to map
// computed values to aesthetics.
//
// Expressions use Go expression syntax. Identifiers name columns of a
// dataset and are evaluated row-wise; columns whose names are not Go
// identifiers can be referenced as col("name"). The supported
// operators are the arithmetic operators + - * / %, the comparison
// operators, && || and !, plus the functions log, log10, sqrt, abs,
// exp, and str.
package expr

import (
	"go/token"
	"strconv"
	"strings"
)

// An Expr is a node in a parsed expression.
//
// The String method of every Expr returns source text that parses
// back to an equal Expr.
type Expr interface {
	String() string

	// prec returns the binding precedence of this node when
	// printed.
	prec() int
}

// Lit is a literal number, string, or boolean.
type Lit struct {
	// Kind is token.INT, token.FLOAT, token.STRING, or
	// token.IDENT for the booleans true and false.
	Kind token.Token

	// Value is the literal's source text.
	Value string
}

// Ref is a reference to a column.
type Ref struct {
	Name string
}

// Unary is a unary operation: -X, +X, or !X.
type Unary struct {
	Op token.Token
	X  Expr
}

// Binary is a binary operation X Op Y.
type Binary struct {
	Op   token.Token
	X, Y Expr
}

// Call is a call of a built-in function.
type Call struct {
	Fun  string
	Args []Expr
}

var builtins = map[string]int{
	"log":   1,
	"log10": 1,
	"sqrt":  1,
	"abs":   1,
	"exp":   1,
	"str":   1,
}

func (e *Lit) String() string { return e.Value }

func (e *Ref) String() string {
	if isIdent(e.Name) {
		return e.Name
	}
	return "col(" + strconv.Quote(e.Name) + ")"
}

// isIdent reports whether name can be written as a bare identifier
// and still parse as a column reference.
func isIdent(name string) bool {
	if name == "" || name == "true" || name == "false" || name == "col" || token.IsKeyword(name) {
		return false
	}
	if _, ok := builtins[name]; ok {
		return false
	}
	return token.IsIdentifier(name)
}

func (e *Unary) String() string {
	x := e.X.String()
	if _, ok := e.X.(*Unary); ok || e.X.prec() < token.UnaryPrec {
		x = "(" + x + ")"
	}
	return e.Op.String() + x
}

func (e *Binary) String() string {
	x, y := e.X.String(), e.Y.String()
	p := e.Op.Precedence()
	// Binary operators are left associative, so a right operand
	// of equal precedence needs parentheses.
	if e.X.prec() < p {
		x = "(" + x + ")"
	}
	if e.Y.prec() <= p {
		y = "(" + y + ")"
	}
	return x + " " + e.Op.String() + " " + y
}

func (e *Call) String() string {
	var b strings.Builder
	b.WriteString(e.Fun)
	b.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (*Lit) prec() int      { return token.HighestPrec }
func (*Ref) prec() int      { return token.HighestPrec }
func (*Call) prec() int     { return token.HighestPrec }
func (*Unary) prec() int    { return token.UnaryPrec }
func (e *Binary) prec() int { return e.Op.Precedence() }

// Refs returns the names of the columns referenced by e, in order of
// first appearance.
func Refs(e Expr) []string {
	var names []string
	seen := map[string]bool{}
	var walk func(e Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case *Ref:
			if !seen[e.Name] {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		case *Unary:
			walk(e.X)
		case *Binary:
			walk(e.X)
			walk(e.Y)
		case *Call:
			for _, arg := range e.Args {
				walk(arg)
			}
		}
	}
	walk(e)
	return names
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *Lit:
		b, ok := b.(*Lit)
		return ok && *a == *b
	case *Ref:
		b, ok := b.(*Ref)
		return ok && a.Name == b.Name
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && Equal(a.X, b.X)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.X, b.X) && Equal(a.Y, b.Y)
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Fun != b.Fun || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
