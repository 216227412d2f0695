// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command marksvg draws charts of tabular data.
//
// marksvg reads CSV files with a header row (or standard input) and
// draws the marks described by a YAML chart file (-chart) and by
// -mark flags. Each -mark is a mark type followed by key=value
// attributes, for example:
//
//	marksvg -mark 'bar x=Fruit y=Contestant height="Number Eaten" color=Contestant groupx=Fruit' fruit.csv
//
// String attribute values name a field; records without that field
// use the value literally (so color=steelblue paints steelblue).
// Numeric values are constants.
//
// By default marksvg writes SVG. With -png it writes a PNG image,
// and with -table it prints the resolved shapes.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-marks/internal/render"
	"github.com/aclements/go-marks/plot"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	defaultWidth  = 640
	defaultHeight = 400
)

// markFlags collects repeated -mark flags.
type markFlags []*markSpec

func (f *markFlags) String() string {
	return fmt.Sprint(len(*f), " marks")
}

func (f *markFlags) Set(s string) error {
	m, err := parseMark(s)
	if err != nil {
		return err
	}
	*f = append(*f, m)
	return nil
}

func main() {
	log.SetPrefix("marksvg: ")
	log.SetFlags(0)

	var marks markFlags
	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagChart      = flag.String("chart", "", "read chart description from YAML `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table of shapes instead of a plot")
		flagPNG        = flag.Bool("png", false, "output a PNG image instead of SVG")
		flagSuper      = flag.Int("supersample", 2, "rasterize PNG output at `n` times the size and filter down")
		flagWidth      = flag.Int("width", 0, "plot width in `pixels` (default: chart width or 640)")
		flagHeight     = flag.Int("height", 0, "plot height in `pixels` (default: chart height or 400)")
	)
	flag.Var(&marks, "mark", "add a mark described by `desc`; may be repeated")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Read the chart description.
	c := new(chart)
	if *flagChart != "" {
		f, err := os.Open(*flagChart)
		if err != nil {
			log.Fatal(err)
		}
		c, err = readChart(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	c.Marks = append(c.Marks, marks...)
	if len(c.Marks) == 0 {
		log.Fatal("no marks; use -chart or -mark")
	}

	// Read data. Inline chart data stands in for stdin.
	var data plot.Dataset
	for _, d := range c.Data {
		data = append(data, plot.Datum(d))
	}
	paths := flag.Args()
	if len(paths) == 0 && len(c.Data) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
			}

			tab, err := readCSV(f)
			if err != nil {
				log.Fatalf("%s: %v", path, err)
			}
			data = append(data, toDataset(tab)...)
		}()
	}

	width, height := dims(*flagWidth, *flagHeight, c)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else if *flagPNG && !*flagTable && terminal.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}

	// Plot.
	p, err := c.newPlot(data, float64(width), float64(height))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Dispose()
	shapes, err := p.Draw()
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *flagTable:
		table.Fprint(f, shapesTable(shapes))
	case *flagPNG:
		err = render.PNG(f, shapes, width, height, *flagSuper)
	default:
		err = render.SVG(f, shapes, width, height)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// dims returns the plot size from the flags, falling back to the
// chart and then the defaults.
func dims(w, h int, c *chart) (int, int) {
	if w <= 0 {
		w = int(c.Width)
	}
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = int(c.Height)
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// shapesTable returns a table with one row per shape giving its kind,
// bounding box, and paint.
func shapesTable(shapes []plot.Shape) *table.Table {
	n := len(shapes)
	kinds := make([]string, n)
	xs, ys, ws, hs := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	fills, strokes := make([]string, n), make([]string, n)
	for i, s := range shapes {
		switch s := s.(type) {
		case plot.Rect:
			kinds[i] = "rect"
			xs[i], ys[i], ws[i], hs[i] = s.X, s.Y, s.Width, s.Height
			fills[i], strokes[i] = paint(s.Fill), paint(s.Stroke)
		case plot.Circle:
			kinds[i] = "circle"
			xs[i], ys[i], ws[i], hs[i] = s.CX-s.R, s.CY-s.R, 2*s.R, 2*s.R
			fills[i], strokes[i] = paint(s.Fill), paint(s.Stroke)
		case plot.Path:
			kinds[i] = "path"
			xs[i], ys[i], ws[i], hs[i] = bounds(s.Points)
			fills[i], strokes[i] = paint(nil), paint(s.Stroke)
		default:
			kinds[i] = strings.TrimPrefix(fmt.Sprintf("%T", s), "plot.")
		}
	}
	return new(table.Builder).
		Add("shape", kinds).
		Add("x", xs).
		Add("y", ys).
		Add("width", ws).
		Add("height", hs).
		Add("fill", fills).
		Add("stroke", strokes).
		Done()
}

func bounds(pts []plot.Point) (x, y, w, h float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0, x1, y1 := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
		x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
	}
	return x0, y0, x1 - x0, y1 - y0
}

// paint formats a shape color for display.
func paint(v interface{}) string {
	if v == nil {
		return "none"
	}
	if c, ok := v.(color.Color); ok {
		r, g, b, _ := c.RGBA()
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return fmt.Sprint(v)
}

