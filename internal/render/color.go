// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorOf resolves a shape paint value to a color. v may be a
// color.Color, an SVG color name, or a "#rgb" or "#rrggbb" string.
// ColorOf returns false for nil and for values it cannot resolve.
func ColorOf(v interface{}) (color.Color, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case color.Color:
		return v, true
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "none" || s == "transparent" {
			return color.Transparent, true
		}
		if c, ok := colornames.Map[s]; ok {
			return c, true
		}
		if strings.HasPrefix(s, "#") {
			return parseHex(s[1:])
		}
	}
	return nil, false
}

func parseHex(s string) (color.Color, bool) {
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return nil, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}

// cssPaint returns a CSS declaration painting property prop with v.
// Unresolvable values paint nothing.
func cssPaint(prop string, v interface{}) string {
	c, ok := ColorOf(v)
	if !ok {
		if v != nil {
			Warning.Printf("unknown %s color %v; not painting", prop, v)
		}
		return prop + ":none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8

	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, r, g, b)
	if a != 0xffff {
		// CSS2 has no rgba, so opacity is a separate property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	}
	return css
}
