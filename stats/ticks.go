// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/ggdecl/element"
)

// DefaultMaxTicks is the default maximum number of major ticks on a
// continuous axis.
const DefaultMaxTicks = 8

// Ticks computes tick positions, tick labels, and grid lines for one
// axis from the combined aesthetics of all layers.
//
// On a discrete axis there is one tick per level. On a continuous
// axis ticks are chosen at "nice" round values covering the range of
// every position aesthetic of the axis and any view limits.
type Ticks struct {
	// Axis is "x" or "y".
	Axis string

	// Max is the maximum number of ticks on a continuous axis. If
	// 0, DefaultMaxTicks is used.
	Max int

	// At, if non-nil, gives explicit tick positions in scaled
	// units.
	At []float64
}

// XTicks and YTicks return the default tick statistics.
func XTicks() *Ticks { return &Ticks{Axis: "x"} }
func YTicks() *Ticks { return &Ticks{Axis: "y"} }

type axis struct {
	family                []element.Aes
	tick, label, grid     element.Aes
	viewMin, viewMax, key element.Aes
}

var axes = map[string]axis{
	"x": {element.XFamily, element.XTick, element.XTickLabel, element.XGrid, element.XViewMin, element.XViewMax, element.X},
	"y": {element.YFamily, element.YTick, element.YTickLabel, element.YGrid, element.YViewMin, element.YViewMax, element.Y},
}

func (s *Ticks) axis() (axis, error) {
	ax, ok := axes[s.Axis]
	if !ok {
		return axis{}, fmt.Errorf("tick axis must be x or y, not %q", s.Axis)
	}
	return ax, nil
}

func (s *Ticks) Kind() element.Kind { return element.StatisticKind }

func (s *Ticks) Aesthetics() []element.Aes {
	ax, err := s.axis()
	if err != nil {
		return nil
	}
	return append(append([]element.Aes(nil), ax.family...), ax.tick, ax.label, ax.grid)
}

func (s *Ticks) DefaultScales() []element.Scale { return nil }

func (s *Ticks) Doc() element.Doc {
	d := element.Doc{"type": "stat.ticks", "axis": s.Axis}
	if s.Max != 0 {
		d["max"] = s.Max
	}
	if s.At != nil {
		d["at"] = s.At
	}
	return d
}

func (s *Ticks) Apply(a *element.Aesthetics) error {
	ax, err := s.axis()
	if err != nil {
		return err
	}
	var ticks []float64
	labelAes := ax.key
	switch {
	case s.At != nil:
		ticks = s.At
	default:
		var levels []string
		for _, ae := range ax.family {
			if levels = a.Levels(ae); levels != nil {
				labelAes = ae
				break
			}
		}
		if levels != nil {
			ticks = make([]float64, len(levels))
			for i := range levels {
				ticks[i] = float64(i + 1)
			}
			break
		}
		lo, hi, ok := axisRange(a, ax)
		if !ok {
			a.Set(ax.tick, []float64{})
			a.Set(ax.label, []string{})
			a.Set(ax.grid, []float64{})
			return nil
		}
		max := s.Max
		if max <= 0 {
			max = DefaultMaxTicks
		}
		ls := scale.Linear{Min: lo, Max: hi}
		ticks, _ = ls.Ticks(scale.TickOptions{Max: max})
	}
	if a.Labeler(labelAes) == nil {
		for _, ae := range ax.family {
			if a.Labeler(ae) != nil {
				labelAes = ae
				break
			}
		}
	}
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = a.Label(labelAes, t)
	}
	a.Set(ax.tick, ticks)
	a.Set(ax.label, labels)
	a.Set(ax.grid, ticks)
	return nil
}

// axisRange returns the range of the finite values of ax's position
// aesthetics and view limits in a. A degenerate range is widened by
// 1 in each direction.
func axisRange(a *element.Aesthetics, ax axis) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, ae := range append(append([]element.Aes(nil), ax.family...), ax.viewMin, ax.viewMax) {
		for _, v := range a.Floats(ae) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi, true
}

// Range is axisRange for the named axis. It is used by coordinate
// systems to agree with the tick statistic on the data range.
func Range(a *element.Aesthetics, axisName string) (lo, hi float64, ok bool) {
	ax, found := axes[axisName]
	if !found {
		return 0, 0, false
	}
	return axisRange(a, ax)
}

func decodeTicks(d element.Doc) (element.Element, error) {
	s := &Ticks{Axis: d.Str("axis", "x"), Max: d.Int("max", 0), At: d.Floats("at")}
	if _, err := s.axis(); err != nil {
		return nil, err
	}
	return s, nil
}
