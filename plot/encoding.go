// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// Datum is a single record of a Dataset. Its fields are not known
// statically.
type Datum map[string]interface{}

// Dataset is an ordered sequence of records. The plot never modifies
// a Dataset.
type Dataset []Datum

// Channel names a visual dimension of a mark.
type Channel string

const (
	X      Channel = "x"
	X2     Channel = "x2"
	Y      Channel = "y"
	Height Channel = "height"
	DX     Channel = "dx"
	DY     Channel = "dy"
	Color  Channel = "color"
	Stroke Channel = "stroke"
)

// scaleChannel returns the channel whose scale ch is mapped through.
// Secondary position channels share the scale of their primary
// axis, and stroke shares the color scale.
func scaleChannel(ch Channel) Channel {
	switch ch {
	case X2, DX:
		return X
	case Height, DY:
		return Y
	case Stroke:
		return Color
	}
	return ch
}

type encodingKind int

const (
	encNone encodingKind = iota
	encConst
	encField
	encFunc
	encKey
)

// An Encoding says how to obtain a channel's value from a Datum.
//
// The zero Encoding is absent. Channels with an absent encoding
// resolve to their default value.
type Encoding struct {
	kind  encodingKind
	name  string
	value interface{}
	fn    func(Datum) interface{}
}

// Const returns an Encoding that always yields v. Constants are
// literal visual values and are never scaled.
func Const(v interface{}) Encoding {
	return Encoding{kind: encConst, value: v}
}

// Field returns an Encoding that yields the named field of each
// Datum. If a Datum lacks the field, the value is missing (nil).
func Field(name string) Encoding {
	return Encoding{kind: encField, name: name}
}

// Func returns an Encoding that yields f(d) for each Datum d.
func Func(f func(Datum) interface{}) Encoding {
	if f == nil {
		return Encoding{}
	}
	return Encoding{kind: encFunc, fn: f}
}

// Key returns an Encoding that probes each Datum for the named field.
// If the Datum has the field, Key behaves like Field. Otherwise, the
// name itself is used as a literal value and is not scaled. For
// example, Key("red") colors records that have a "red" field by that
// field, and colors all other records "red".
//
// The decision is made separately for every Datum, so a dataset in
// which only some records have the field mixes the two behaviors.
// New code should prefer Field or Const, which state the intent.
func Key(name string) Encoding {
	return Encoding{kind: encKey, name: name}
}

// IsZero reports whether e is absent.
func (e Encoding) IsZero() bool {
	return e.kind == encNone
}

// isData reports whether e can produce values derived from data, as
// opposed to only literal values.
func (e Encoding) isData() bool {
	return e.kind == encField || e.kind == encFunc || e.kind == encKey
}

func (e Encoding) String() string {
	switch e.kind {
	case encConst:
		return fmt.Sprintf("const(%v)", e.value)
	case encField:
		return fmt.Sprintf("field(%q)", e.name)
	case encFunc:
		return "func"
	case encKey:
		return fmt.Sprintf("key(%q)", e.name)
	}
	return "none"
}
