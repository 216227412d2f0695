// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Kind classifies the values of a channel.
type Kind int

const (
	// Unknown is the kind of a missing value.
	Unknown Kind = iota

	// ContinuousKind values are numeric.
	ContinuousKind

	// DiscreteKind values are anything else that is comparable.
	DiscreteKind
)

func (k Kind) String() string {
	switch k {
	case ContinuousKind:
		return "continuous"
	case DiscreteKind:
		return "discrete"
	}
	return "unknown"
}

var isNumeric = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
}

var float64Type = reflect.TypeOf(float64(0))

// Classify returns ContinuousKind if v's dynamic type is numeric,
// Unknown if v is nil, and DiscreteKind otherwise.
func Classify(v interface{}) Kind {
	if v == nil {
		return Unknown
	}
	if isNumeric[reflect.TypeOf(v).Kind()] {
		return ContinuousKind
	}
	return DiscreteKind
}

// toFloat converts a numeric value to float64. ok is false if v is
// not numeric.
func toFloat(v interface{}) (f float64, ok bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	if !isNumeric[rv.Kind()] {
		return 0, false
	}
	return rv.Convert(float64Type).Float(), true
}

// A Domain is the set of values a channel takes. It is either a
// Continuous or a Discrete.
type Domain interface {
	Kind() Kind

	// Empty reports whether the domain contains no values.
	Empty() bool
}

// Continuous is a closed numeric interval [Min, Max].
//
// The empty interval has Min = +Inf and Max = -Inf. It is the
// identity for MergeContinuous.
type Continuous struct {
	Min, Max float64
}

// EmptyContinuous returns the empty interval.
func EmptyContinuous() Continuous {
	return Continuous{math.Inf(1), math.Inf(-1)}
}

func (Continuous) Kind() Kind { return ContinuousKind }

func (c Continuous) Empty() bool {
	return !(c.Min <= c.Max)
}

// Include returns the smallest interval containing c and v.
func (c Continuous) Include(v float64) Continuous {
	if math.IsNaN(v) {
		return c
	}
	return Continuous{math.Min(c.Min, v), math.Max(c.Max, v)}
}

func (c Continuous) String() string {
	return fmt.Sprintf("[%g,%g]", c.Min, c.Max)
}

// Discrete is a set of distinct values in first-seen order. Values
// must be comparable.
type Discrete []interface{}

func (Discrete) Kind() Kind { return DiscreteKind }

func (d Discrete) Empty() bool { return len(d) == 0 }

// Index returns the position of v in d, or -1.
func (d Discrete) Index(v interface{}) int {
	for i, x := range d {
		if x == v {
			return i
		}
	}
	return -1
}

// DataType declares the kind of a channel instead of inferring it
// from the data.
type DataType struct {
	Kind Kind

	// Zero makes a continuous domain include 0.
	Zero bool

	// Ordered sorts a discrete domain by value rather than by
	// first appearance.
	Ordered bool
}

// ContinuousType declares a numeric channel. If zero is true, its
// domain always includes 0.
func ContinuousType(zero bool) DataType {
	return DataType{Kind: ContinuousKind, Zero: zero}
}

// DiscreteType declares a categorical channel. If ordered is true,
// its domain is sorted.
func DiscreteType(ordered bool) DataType {
	return DataType{Kind: DiscreteKind, Ordered: ordered}
}

// ComputeDomain returns the domain of fn over data. Missing (nil)
// values are ignored.
//
// The kind of the domain is decided by the first non-missing value.
// If there are no non-missing values, the result is the empty
// Continuous.
func ComputeDomain(data Dataset, fn ValueFunc) Domain {
	return ComputeDomainAs(data, fn, DataType{})
}

// ComputeDomainAs is like ComputeDomain, but uses the declared kind
// of dt if it is not Unknown.
func ComputeDomainAs(data Dataset, fn ValueFunc, dt DataType) Domain {
	vals := make([]interface{}, 0, len(data))
	for _, d := range data {
		if v := fn(d); v != nil {
			vals = append(vals, v)
		}
	}

	kind := dt.Kind
	if kind == Unknown && len(vals) > 0 {
		kind = Classify(vals[0])
	}

	switch kind {
	case DiscreteKind:
		dom := nub(vals)
		if dt.Ordered {
			sortValues(dom)
		}
		return dom
	}

	dom := EmptyContinuous()
	skipped := 0
	for _, v := range vals {
		f, ok := toFloat(v)
		if !ok {
			skipped++
			continue
		}
		dom = dom.Include(f)
	}
	if skipped > 0 {
		Warning.Printf("ignoring %d non-numeric values in continuous domain", skipped)
	}
	if dt.Zero {
		dom = dom.Include(0)
	}
	return dom
}

// nub returns the distinct values of vals in first-seen order.
func nub(vals []interface{}) Discrete {
	seen := make(map[interface{}]bool)
	out := Discrete{}
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// sortValues sorts numbers before strings before everything else.
// Numbers and strings sort by value; other values keep their order.
func sortValues(vs []interface{}) {
	rank := func(v interface{}) int {
		if _, ok := toFloat(v); ok {
			return 0
		}
		if _, ok := v.(string); ok {
			return 1
		}
		return 2
	}
	sort.SliceStable(vs, func(i, j int) bool {
		ri, rj := rank(vs[i]), rank(vs[j])
		if ri != rj {
			return ri < rj
		}
		switch ri {
		case 0:
			fi, _ := toFloat(vs[i])
			fj, _ := toFloat(vs[j])
			return fi < fj
		case 1:
			return vs[i].(string) < vs[j].(string)
		}
		return false
	})
}

// MergeContinuous returns the smallest interval covering all of ds.
// Empty intervals contribute nothing, so merging no domains gives the
// empty interval.
func MergeContinuous(ds ...Continuous) Continuous {
	out := EmptyContinuous()
	for _, d := range ds {
		if d.Empty() {
			continue
		}
		out.Min = math.Min(out.Min, d.Min)
		out.Max = math.Max(out.Max, d.Max)
	}
	return out
}

// MergeDiscrete returns the union of ds, ordered by first appearance
// across ds in order.
func MergeDiscrete(ds ...Discrete) Discrete {
	var all []interface{}
	for _, d := range ds {
		all = append(all, d...)
	}
	return nub(all)
}

// BarDomainY returns the vertical domain of a bar mark with the given
// "y" and "height" encodings. height must be numeric.
//
// If y is absent, bars grow from a zero baseline and the domain is
// [0, max height]. If y is discrete, bars are stacked and the domain
// is [0, sum of all heights]. If y is continuous, bars are placed
// independently and the domain covers y+height for every record.
//
// yType declares the kind of y; if its Kind is Unknown, the kind is
// inferred from the data. If hType.Zero is set, the domain always
// includes 0.
func BarDomainY(data Dataset, y, height Encoding, yType, hType DataType) Continuous {
	dom := barDomainY(data, y, height, yType)
	if hType.Zero {
		dom = MergeContinuous(Continuous{0, 0}, dom)
	}
	return dom
}

func barDomainY(data Dataset, y, height Encoding, yType DataType) Continuous {
	heightFn := DataFunc(height, nil)
	if y.IsZero() {
		hdom, _ := ComputeDomainAs(data, heightFn, ContinuousType(false)).(Continuous)
		return MergeContinuous(Continuous{0, 0}, hdom)
	}

	yFn := DataFunc(y, nil)
	kind := yType.Kind
	if kind == Unknown {
		kind = firstKind(data, yFn)
	}

	if kind == DiscreteKind {
		total := 0.0
		for _, d := range data {
			if h, ok := toFloat(heightFn(d)); ok {
				total += h
			}
		}
		return Continuous{0, total}
	}

	top := func(d Datum) interface{} {
		yv, ok1 := toFloat(yFn(d))
		hv, ok2 := toFloat(heightFn(d))
		if !ok1 || !ok2 {
			return nil
		}
		return yv + hv
	}
	dom, _ := ComputeDomainAs(data, top, ContinuousType(false)).(Continuous)
	return dom
}

// firstKind classifies the first non-missing value of fn over data.
func firstKind(data Dataset, fn ValueFunc) Kind {
	for _, d := range data {
		if k := Classify(fn(d)); k != Unknown {
			return k
		}
	}
	return Unknown
}
