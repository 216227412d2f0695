// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func near(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

// drawRects draws bar on a new plot over data and returns its Rects.
func drawRects(t *testing.T, data Dataset, w, h float64, bar *Bar) []Rect {
	t.Helper()
	p := New(data, w, h)
	if _, err := p.Add(bar); err != nil {
		t.Fatal(err)
	}
	shapes, err := p.Draw()
	if err != nil {
		t.Fatal(err)
	}
	rects := make([]Rect, len(shapes))
	for i, s := range shapes {
		rects[i] = s.(Rect)
	}
	return rects
}

// checkRects compares the geometry of got to want, where each want
// entry is {x, y, width, height}.
func checkRects(t *testing.T, got []Rect, want [][4]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("want %d rects; got %d", len(want), len(got))
	}
	for i, r := range got {
		w := want[i]
		if !near(r.X, w[0]) || !near(r.Y, w[1]) || !near(r.Width, w[2]) || !near(r.Height, w[3]) {
			t.Errorf("rect %d: want %v; got {%v %v %v %v}", i, w, r.X, r.Y, r.Width, r.Height)
		}
	}
}

func TestBarNoY(t *testing.T) {
	data := Dataset{{"h": 2}, {"h": 3}, {"h": 5}}
	rects := drawRects(t, data, 300, 100, &Bar{Height: Field("h")})
	checkRects(t, rects, [][4]float64{
		{2.5, 60, 95, 40},
		{102.5, 40, 95, 60},
		{202.5, 0, 95, 100},
	})
	for _, r := range rects {
		if r.Fill != "black" || r.Stroke != nil {
			t.Errorf("want default black fill and no stroke; got %v, %v", r.Fill, r.Stroke)
		}
	}
}

func TestBarStacked(t *testing.T) {
	data := Dataset{{"y": "a", "h": 2}, {"y": "b", "h": 3}, {"y": "c", "h": 5}}
	rects := drawRects(t, data, 300, 100, &Bar{Y: Field("y"), Height: Field("h")})
	checkRects(t, rects, [][4]float64{
		{2.5, 80, 295, 20},
		{2.5, 50, 295, 30},
		{2.5, 0, 295, 50},
	})
}

func TestBarStackedByX(t *testing.T) {
	data := Dataset{
		{"k": "a", "y": "p", "h": 1},
		{"k": "a", "y": "q", "h": 2},
		{"k": "b", "y": "p", "h": 4},
	}
	rects := drawRects(t, data, 200, 70, &Bar{X: Field("k"), Y: Field("y"), Height: Field("h")})
	checkRects(t, rects, [][4]float64{
		{2.5, 60, 95, 10},
		{2.5, 40, 95, 20},
		{102.5, 30, 95, 40},
	})
}

func TestBarContinuousY(t *testing.T) {
	data := Dataset{{"y": 1, "h": 2}, {"y": 4, "h": 1}}
	rects := drawRects(t, data, 100, 100, &Bar{X: Const(10), X2: Const(20), Y: Field("y"), Height: Field("h")})
	// The y domain is [3, 5], the extent of the top edges.
	checkRects(t, rects, [][4]float64{
		{10, 100, 10, 100},
		{10, 0, 10, 50},
	})
}

func TestBarHeightType(t *testing.T) {
	data := Dataset{{"y": 1, "h": 2}, {"y": 4, "h": 1}}
	bar := &Bar{
		X: Const(10), X2: Const(20), Y: Field("y"), Height: Field("h"),
		Types: map[Channel]DataType{Height: ContinuousType(true)},
	}
	rects := drawRects(t, data, 100, 100, bar)
	// Zero widens the y domain to [0, 5].
	checkRects(t, rects, [][4]float64{
		{10, 40, 10, 40},
		{10, 0, 10, 20},
	})

	p := New(data, 100, 100)
	p.Add(&Bar{Height: Field("h"), Types: map[Channel]DataType{Height: DiscreteType(false)}})
	if _, err := p.Draw(); err == nil {
		t.Errorf("discrete height type: want error")
	}
}

func TestBarRange(t *testing.T) {
	data := Dataset{{"s": 0, "e": 5}, {"s": 10, "e": 5}}
	rects := drawRects(t, data, 100, 10, &Bar{X: Field("s"), X2: Field("e"), Height: Const(1)})
	checkRects(t, rects, [][4]float64{
		{0, 0, 50, 10},
		{50, 0, 50, 10},
	})
}

func TestBarGroupOrder(t *testing.T) {
	data := Dataset{
		{"f": "b", "h": 1},
		{"f": "a", "h": 2},
		{"f": "b", "h": 3},
	}
	rects := drawRects(t, data, 300, 30, &Bar{Height: Field("h"), GroupX: "f"})
	var hs []interface{}
	for _, r := range rects {
		hs = append(hs, r.Datum["h"])
	}
	if want := []interface{}{1, 3, 2}; !de(hs, want) {
		t.Errorf("want draw order %v; got %v", want, hs)
	}
}

func TestBarColor(t *testing.T) {
	data := Dataset{{"k": "a", "h": 1}, {"k": "b", "h": 1}, {"h": 1, "steelblue": "a"}}

	rects := drawRects(t, data, 300, 30, &Bar{Height: Field("h"), Color: Key("steelblue")})
	if rects[0].Fill != "steelblue" || rects[1].Fill != "steelblue" {
		t.Errorf("key literal: want steelblue; got %v, %v", rects[0].Fill, rects[1].Fill)
	}
	if _, ok := rects[2].Fill.(color.Color); !ok {
		t.Errorf("key present: want scaled color; got %v", rects[2].Fill)
	}

	rects = drawRects(t, data, 300, 30, &Bar{Height: Field("h"), Color: Field("k"), Stroke: Const("white")})
	if rects[0].Fill == rects[1].Fill {
		t.Errorf("field: want distinct colors; got %v", rects[0].Fill)
	}
	if rects[2].Fill != nil {
		t.Errorf("missing field: want nil fill; got %v", rects[2].Fill)
	}
	if rects[0].Stroke != "white" {
		t.Errorf("const stroke: want white; got %v", rects[0].Stroke)
	}
}

func TestMissingChannel(t *testing.T) {
	p := New(Dataset{{"a": 1}}, 10, 10)
	for _, test := range []struct {
		mark Mark
		name string
		ch   Channel
	}{
		{&Bar{X: Field("a")}, "bar", Height},
		{&Dot{X: Field("a")}, "dot", Y},
		{&Dot{Y: Field("a")}, "dot", X},
		{&Line{Y: Field("a")}, "line", X},
	} {
		for _, err := range []error{test.mark.Register(p, 1), resolveErr(test.mark, p)} {
			var merr *MissingChannelError
			if !errors.As(err, &merr) || merr.Mark != test.name || merr.Channel != test.ch {
				t.Errorf("%s: want missing %q; got %v", test.name, test.ch, err)
			}
		}
	}
}

func resolveErr(m Mark, p *Plot) error {
	_, err := m.Resolve(p)
	return err
}

func TestDot(t *testing.T) {
	data := Dataset{{"x": 0, "y": 0, "c": 1.0}, {"x": 10, "y": 5, "c": 2.0}}
	p := New(data, 100, 50)
	p.Add(&Dot{X: Field("x"), Y: Field("y"), Color: Field("c"), R: 3})
	shapes, err := p.Draw()
	if err != nil {
		t.Fatal(err)
	}
	c0, c1 := shapes[0].(Circle), shapes[1].(Circle)
	if c0.CX != 0 || c0.CY != 50 || c1.CX != 100 || c1.CY != 0 {
		t.Errorf("want (0,50) and (100,0); got (%v,%v) and (%v,%v)", c0.CX, c0.CY, c1.CX, c1.CY)
	}
	if c0.R != 3 {
		t.Errorf("want r=3; got %v", c0.R)
	}
	if c0.Fill == c1.Fill {
		t.Errorf("continuous color: want different fills")
	}
}

func TestFilterPoints(t *testing.T) {
	coords := [][2]interface{}{
		{1, 2},
		{nil, 3},
		{4.0, math.NaN()},
		{5, 6},
		{"x", 1},
	}
	got := FilterPoints(coords)
	if want := []Point{{1, 2}, {5, 6}}; !de(got, want) {
		t.Errorf("want %v; got %v", want, got)
	}
	if len(coords)-len(got) != 3 {
		t.Errorf("want 3 points dropped")
	}
}

func TestLine(t *testing.T) {
	data := Dataset{
		{"t": 0, "v": 0},
		{"t": 1},
		{"t": 2, "v": 4},
		{"t": 4, "v": 2},
	}
	p := New(data, 40, 40)
	p.Add(&Line{X: Field("t"), Y: Field("v"), DY: Const(1), Stroke: "red"})
	shapes, err := p.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 1 {
		t.Fatalf("want 1 path; got %d", len(shapes))
	}
	path := shapes[0].(Path)
	want := []Point{{0, 41}, {20, 1}, {40, 21}}
	if !de(path.Points, want) {
		t.Errorf("want points %v; got %v", want, path.Points)
	}
	if path.Stroke != "red" || path.StrokeWidth != DefaultStrokeWidth || !path.Curved {
		t.Errorf("unexpected style %+v", path)
	}
}
