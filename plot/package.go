// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot resolves grammar-of-graphics encodings into concrete
// visual values.
//
// A plot is built from a Dataset, which is an ordered sequence of
// records, and a set of marks. Each mark (Bar, Dot, Line) binds
// visual channels, such as "x", "y", "height", or "color", to
// Encodings. An Encoding says how to get a value out of a record: it
// is a constant, a field reference, or an arbitrary function.
//
// Resolution happens in two phases. First, every mark computes the
// domain of each of its channels over the data and registers that
// contribution with the shared Plot under the mark's identity.
// Second, the Plot merges the contributions per channel and derives
// a Scale from each merged domain, and each mark maps every record
// through those scales to produce shapes in pixel space. Plot.Draw
// runs both phases in order.
//
// Domains
//
// A channel's domain is either Continuous (a numeric interval) or
// Discrete (a set of distinct values in first-seen order). Which one
// is decided from the data: a channel is continuous if its first
// non-missing value is numeric. Marks may also declare a channel's
// DataType explicitly.
//
// Bars use a special rule for the vertical domain. Without a "y"
// encoding, bars grow from zero. With a discrete "y", bars are
// stacked, so the domain is the total of all heights. With a
// continuous "y", each bar is placed independently and the domain
// covers every bar's top edge.
//
// Rendering
//
// This package does not draw anything. Marks produce Shapes whose
// fields are pixel coordinates and color values, and a renderer
// places those in an output surface.
package plot

import (
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent
// the resolution of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plot] ", log.Lshortfile)
