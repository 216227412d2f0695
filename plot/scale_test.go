// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math"
	"testing"
)

func TestLinearScale(t *testing.T) {
	s, err := NewScale(Linear, Continuous{0, 10}, [2]float64{0, 100})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		in   interface{}
		want float64
	}{
		{0, 0}, {10, 100}, {5, 50}, {5.0, 50}, {int64(10), 100}, {-5, -50},
	} {
		if got := s.Map(test.in); got != test.want {
			t.Errorf("Map(%v) = %v; want %v", test.in, got, test.want)
		}
	}
	if got := s.Domain(); got != (Continuous{0, 10}) {
		t.Errorf("Domain() = %v", got)
	}
	if got := s.Range(); got != [2]float64{0, 100} {
		t.Errorf("Range() = %v", got)
	}
	if got := s.Map("5"); !math.IsNaN(got.(float64)) {
		t.Errorf("Map(\"5\") = %v; want NaN", got)
	}
	if _, err := NewScale(ScaleKind(42), Continuous{0, 1}, [2]float64{0, 1}); err == nil {
		t.Errorf("NewScale with unknown kind should fail")
	}
}

func TestLinearScaleInverted(t *testing.T) {
	s := NewLinearScale(Continuous{0, 5}, [2]float64{200, 0})
	if got := s.MapFloat(0); got != 200 {
		t.Errorf("MapFloat(0) = %v; want 200", got)
	}
	if got := s.MapFloat(5); got != 0 {
		t.Errorf("MapFloat(5) = %v; want 0", got)
	}
	if got := s.Invert(200); got != 0 {
		t.Errorf("Invert(200) = %v; want 0", got)
	}
	if got := s.Invert(0); got != 5 {
		t.Errorf("Invert(0) = %v; want 5", got)
	}
}

func TestLinearScaleDegenerate(t *testing.T) {
	for _, dom := range []Continuous{{3, 3}, EmptyContinuous()} {
		s := NewLinearScale(dom, [2]float64{0, 100})
		if !s.Degenerate() {
			t.Errorf("%v: want degenerate", dom)
		}
		for _, v := range []float64{0, 3, 100} {
			if got := s.MapFloat(v); !math.IsNaN(got) {
				t.Errorf("%v: MapFloat(%v) = %v; want NaN", dom, v, got)
			}
		}
	}
}

func TestLinearScaleTicks(t *testing.T) {
	s := NewLinearScale(Continuous{0, 10}, [2]float64{0, 100})
	ticks := s.Ticks(6)
	if len(ticks) == 0 || len(ticks) > 6 {
		t.Fatalf("Ticks(6) = %v; want 1 to 6 ticks", ticks)
	}
	for i, x := range ticks {
		if x < 0 || x > 10 {
			t.Errorf("tick %v outside domain", x)
		}
		if i > 0 && x <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}

	if got := NewLinearScale(EmptyContinuous(), [2]float64{0, 1}).Ticks(5); got != nil {
		t.Errorf("empty domain: want no ticks; got %v", got)
	}
	if got := NewLinearScale(Continuous{4, 4}, [2]float64{0, 1}).Ticks(5); !de(got, []float64{4}) {
		t.Errorf("point domain: want [4]; got %v", got)
	}
}

func TestOrdinalScale(t *testing.T) {
	s := NewOrdinalScale(Discrete{"a", "b", "c", "d"}, [2]float64{0, 100})
	for _, test := range []struct {
		in   interface{}
		want float64
	}{
		{"a", 12.5}, {"b", 37.5}, {"d", 87.5},
	} {
		if got := s.Map(test.in); got != test.want {
			t.Errorf("Map(%v) = %v; want %v", test.in, got, test.want)
		}
	}
	if got := s.Map("z"); !math.IsNaN(got.(float64)) {
		t.Errorf("Map(z) = %v; want NaN", got)
	}
	if got := s.Bandwidth(); got != 25 {
		t.Errorf("Bandwidth() = %v; want 25", got)
	}
}

func TestColorScale(t *testing.T) {
	s := NewColorScale(Discrete{"a", "b"})
	ca, cb := s.Map("a"), s.Map("b")
	if ca == nil || cb == nil || ca == cb {
		t.Errorf("want two distinct colors; got %v, %v", ca, cb)
	}
	if got := s.Map("z"); got != nil {
		t.Errorf("Map(z) = %v; want nil", got)
	}

	// Discrete palettes cycle.
	var dom Discrete
	for i := 0; i < len(autoPalette)+1; i++ {
		dom = append(dom, i)
	}
	s = NewColorScale(dom)
	if s.Map(0) != s.Map(len(autoPalette)) {
		t.Errorf("palette should cycle")
	}

	s = NewColorScale(Continuous{0, 1})
	lo, ok1 := s.Map(0).(color.Color)
	hi, ok2 := s.Map(1).(color.Color)
	if !ok1 || !ok2 {
		t.Fatalf("continuous: want colors; got %v, %v", s.Map(0), s.Map(1))
	}
	if lo == hi {
		t.Errorf("continuous: ends of the gradient should differ")
	}
	if s.Map("x") != nil {
		t.Errorf("continuous: non-numeric should map to nil")
	}
}
