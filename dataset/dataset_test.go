// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestColumns(t *testing.T) {
	d := New("prices", new(table.Builder).
		Add("time", []float64{1, 2, 3}).
		Add("price", []int{10, 11, 12}).
		Done())

	if got := d.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if col, err := d.Column("price"); err != nil || !reflect.DeepEqual(col, []int{10, 11, 12}) {
		t.Errorf("Column(price) = %v, %v", col, err)
	}
	if _, err := d.Column("volume"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Column(volume) error = %v, want ErrUnknownColumn", err)
	}
	if name, col, err := d.ColumnAt(1); err != nil || name != "price" || !reflect.DeepEqual(col, []int{10, 11, 12}) {
		t.Errorf("ColumnAt(1) = %s, %v, %v", name, col, err)
	}
	for _, i := range []int{-1, 2} {
		if _, _, err := d.ColumnAt(i); !errors.Is(err, ErrUnknownColumn) {
			t.Errorf("ColumnAt(%d) error = %v, want ErrUnknownColumn", i, err)
		}
	}
}

func TestClassify(t *testing.T) {
	ints := func(n int) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = i
		}
		return v
	}
	for _, test := range []struct {
		name string
		v    table.Slice
		want Class
	}{
		{"floats", []float64{1, 1, 1}, Continuous},
		{"float32", []float32{1}, Continuous},
		{"21 ints", ints(21), Continuous},
		{"20 ints", ints(20), Discrete},
		{"repeated ints", append(ints(20), ints(20)...), Discrete},
		{"uint8", []uint8{1, 2}, Discrete},
		{"strings", []string{"a", "b"}, Discrete},
		{"bools", []bool{true}, Discrete},
		{"not a slice", 5, Discrete},
	} {
		if got := Classify(test.v); got != test.want {
			t.Errorf("%s: Classify = %s, want %s", test.name, got, test.want)
		}
	}
}

func TestFloats(t *testing.T) {
	if fs, ok := Floats([]int{1, 2}); !ok || !reflect.DeepEqual(fs, []float64{1, 2}) {
		t.Errorf("Floats([]int) = %v, %v", fs, ok)
	}
	if _, ok := Floats([]string{"1"}); ok {
		t.Errorf("Floats([]string) succeeded")
	}
	if got := Strings([]int{1, 2}); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Strings([]int) = %v", got)
	}
}

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV("prices.csv", strings.NewReader("time,price,sym\n1.5,10,a\n2.5,11,b\n"))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		col  string
		want table.Slice
	}{
		{"time", []float64{1.5, 2.5}},
		{"price", []int{10, 11}},
		{"sym", []string{"a", "b"}},
	} {
		if got, _ := d.Column(test.col); !reflect.DeepEqual(got, test.want) {
			t.Errorf("column %s = %#v, want %#v", test.col, got, test.want)
		}
	}

	if _, err := ReadCSV("empty.csv", strings.NewReader("")); err == nil {
		t.Errorf("empty CSV: expected error")
	}
}

func TestReadJSON(t *testing.T) {
	const doc = `{"trades": [
		{"t": 1, "p": 1.5, "buy": true, "who": "x"},
		{"t": 2, "p": 2, "buy": false},
		{"t": 3, "p": 2.5, "buy": true, "who": "z"}
	]}`
	d, err := ReadJSON("trades.json", strings.NewReader(doc), ".trades[]")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Columns(), []string{"buy", "p", "t", "who"}; !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	for _, test := range []struct {
		col  string
		want table.Slice
	}{
		{"t", []int{1, 2, 3}},
		{"p", []float64{1.5, 2, 2.5}},
		{"buy", []bool{true, false, true}},
		{"who", []string{"x", "", "z"}},
	} {
		if got, _ := d.Column(test.col); !reflect.DeepEqual(got, test.want) {
			t.Errorf("column %s = %#v, want %#v", test.col, got, test.want)
		}
	}

	if _, err := ReadJSON("bad.json", strings.NewReader(`[1, 2]`), ""); err == nil {
		t.Errorf("non-object rows: expected error")
	}
}

func TestConvertColumnMissingNumbers(t *testing.T) {
	got := convertColumn([]interface{}{int64(1), nil, 2.5})
	fs, ok := got.([]float64)
	if !ok || len(fs) != 3 || fs[0] != 1 || !math.IsNaN(fs[1]) || fs[2] != 2.5 {
		t.Errorf("got %#v", got)
	}
}

func TestQuerySQL(t *testing.T) {
	db, err := OpenSQL("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, stmt := range []string{
		`create table prices (time real, price integer, sym text)`,
		`insert into prices values (1.5, 10, 'a'), (2.5, 11, 'b')`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatal(err)
		}
	}

	d, err := QuerySQL(ctx, db, "prices", `select time, price, sym from prices order by time`)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Columns(), []string{"time", "price", "sym"}; !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	if got, _ := d.Column("price"); !reflect.DeepEqual(got, []int{10, 11}) {
		t.Errorf("price = %#v", got)
	}
	if got, _ := d.Column("sym"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("sym = %#v", got)
	}

	empty, err := QuerySQL(ctx, db, "none", `select time, price from prices where price > 100`)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.Columns(); len(got) != 2 {
		t.Errorf("empty result columns = %v, want 2 columns", got)
	}

	if _, err := OpenSQL("oracle", ""); err == nil {
		t.Errorf("unknown driver: expected error")
	}
}

func TestReadBenchmarks(t *testing.T) {
	const in = `goos: linux
commit: abc123
BenchmarkFoo-4   	 1000	      1500 ns/op	     64 B/op
BenchmarkFoo-4   	 1000	      1400 ns/op	     64 B/op
BenchmarkBar/size:10-8   	 500	      3000 ns/op
PASS
`
	d, err := ReadBenchmarks("bench.txt", strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	if got, _ := d.Column("name"); !reflect.DeepEqual(got, []string{"Foo", "Foo", "Bar"}) {
		t.Errorf("name = %#v", got)
	}
	if got, _ := d.Column("gomaxprocs"); !reflect.DeepEqual(got, []int{4, 4, 1}) {
		t.Errorf("gomaxprocs = %#v", got)
	}
	if got, _ := d.Column("ns/op"); !reflect.DeepEqual(got, []float64{1500, 1400, 3000}) {
		t.Errorf("ns/op = %#v", got)
	}
	bop, _ := d.Column("B/op")
	if fs := bop.([]float64); fs[0] != 64 || !math.IsNaN(fs[2]) {
		t.Errorf("B/op = %v", fs)
	}
	if got, _ := d.Column("goos"); !reflect.DeepEqual(got, []string{"linux", "linux", "linux"}) {
		t.Errorf("goos = %#v", got)
	}
}
