// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// A ValueFunc maps a Datum to a channel value. A nil result means the
// value is missing.
type ValueFunc func(Datum) interface{}

// ChannelFunc returns a function that resolves e for a Datum and maps
// the result through s.
//
// If e is absent, the function returns def. If s is nil, data values
// pass through unscaled. Literal values (from Const, or from Key when
// the Datum lacks the field) are never scaled. Missing values stay
// nil rather than being passed to s.
func ChannelFunc(e Encoding, s Scale, def interface{}) ValueFunc {
	switch e.kind {
	case encNone:
		return func(Datum) interface{} { return def }

	case encConst:
		v := e.value
		return func(Datum) interface{} { return v }

	case encField:
		name := e.name
		return func(d Datum) interface{} {
			return apply(s, d[name])
		}

	case encFunc:
		f := e.fn
		return func(d Datum) interface{} {
			return apply(s, f(d))
		}

	case encKey:
		name := e.name
		return func(d Datum) interface{} {
			if v, ok := d[name]; ok {
				return apply(s, v)
			}
			return name
		}
	}
	panic("bad encoding kind")
}

// DataFunc is like ChannelFunc, but never applies a scale. It is used
// where raw values are needed, such as for computing domains.
func DataFunc(e Encoding, def interface{}) ValueFunc {
	return ChannelFunc(e, nil, def)
}

// dataOnlyFunc is like DataFunc, but yields nil wherever e would
// yield a literal value instead of data. Domains are computed from
// this so that literal colors and similar constants don't become
// part of a channel's domain.
func dataOnlyFunc(e Encoding) ValueFunc {
	switch e.kind {
	case encConst, encNone:
		return func(Datum) interface{} { return nil }
	case encKey:
		name := e.name
		return func(d Datum) interface{} { return d[name] }
	}
	return DataFunc(e, nil)
}

func apply(s Scale, v interface{}) interface{} {
	if s == nil || v == nil {
		return v
	}
	return s.Map(v)
}
