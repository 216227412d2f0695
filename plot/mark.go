// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// markData returns the data a mark draws: its own data if set, and
// otherwise the plot's.
func markData(p *Plot, own Dataset) Dataset {
	if own != nil {
		return own
	}
	return p.data
}

func require(mark string, encs map[Channel]Encoding) error {
	// Check in a fixed order so errors are deterministic.
	for _, ch := range []Channel{X, Y, Height} {
		if e, ok := encs[ch]; ok && e.IsZero() {
			return &MissingChannelError{mark, ch}
		}
	}
	return nil
}

// channelDomain computes the domain contributed by encoding e, or nil
// if e yields no data.
func channelDomain(data Dataset, e Encoding, dt DataType) Domain {
	if !e.isData() {
		return nil
	}
	return ComputeDomainAs(data, dataOnlyFunc(e), dt)
}

// mergeDomains merges the non-nil domains in ds, which must all be of
// the same kind. It returns nil if every domain is nil.
func mergeDomains(ch Channel, ds ...Domain) (Domain, error) {
	var conts []Continuous
	var discs []Discrete
	for _, d := range ds {
		switch d := d.(type) {
		case Continuous:
			conts = append(conts, d)
		case Discrete:
			discs = append(discs, d)
		}
	}
	switch {
	case conts == nil && discs == nil:
		return nil, nil
	case discs == nil:
		return MergeContinuous(conts...), nil
	case conts == nil:
		return MergeDiscrete(discs...), nil
	}
	return nil, &DomainKindError{ch}
}

// registerMerged merges ds and registers the result for ch. If there
// is no result, any earlier contribution by id to ch is dropped.
func registerMerged(p *Plot, id MarkID, ch Channel, ds ...Domain) error {
	dom, err := mergeDomains(ch, ds...)
	if err != nil {
		return err
	}
	if dom == nil {
		delete(p.reg.domains[id], ch)
		return nil
	}
	return p.RegisterDomain(id, ch, dom)
}

// scales returns the scales for each of chs.
func scales(p *Plot, chs ...Channel) ([]Scale, error) {
	out := make([]Scale, len(chs))
	for i, ch := range chs {
		s, err := p.Scale(ch)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// mapFloat maps v through s and converts the result to float64. It
// returns NaN if v is missing or the result is not numeric.
func mapFloat(s Scale, v interface{}) float64 {
	if v == nil {
		return math.NaN()
	}
	f, ok := toFloat(apply(s, v))
	if !ok {
		return math.NaN()
	}
	return f
}

func floatOf(v interface{}) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return f
}
