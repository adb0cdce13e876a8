package main

import (
	"math"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
)

type drawCall struct {
	kind   string
	pt     r2.Point
	radius float64
	width  float64
	color  colorful.Color
	mode   drawMode
	anchor rectAnchor
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Clear(c colorful.Color) {
	s.calls = append(s.calls, drawCall{kind: "clear", color: c})
}

func (s *recordingSurface) DrawCircle(center r2.Point, radius float64, c colorful.Color, mode drawMode) {
	s.calls = append(s.calls, drawCall{kind: "circle", pt: center, radius: radius, color: c, mode: mode})
}

func (s *recordingSurface) DrawRect(pt r2.Point, width, _ float64, c colorful.Color, anchor rectAnchor) {
	s.calls = append(s.calls, drawCall{kind: "rect", pt: pt, width: width, color: c, anchor: anchor})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCanvasGeometry(t *testing.T) {
	g := canvasGeometry{width: 400, height: 300}
	if mid := g.Midpoint(); mid != (r2.Point{X: 200, Y: 150}) {
		t.Fatalf("midpoint = %v", mid)
	}
	if r := g.InscribedRadius(); r != 150 {
		t.Fatalf("inscribed radius = %v, want 150", r)
	}
	if r := g.CircumscribedRadius(); !almostEqual(r, 250) {
		t.Fatalf("circumscribed radius = %v, want 250", r)
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(2.5)
	base := time.Unix(1000, 0)

	dt, abs := c.Tick(base)
	if dt != 0 || abs != 2.5 {
		t.Fatalf("first tick = (%v, %v), want (0, 2.5)", dt, abs)
	}
	dt, abs = c.Tick(base.Add(250 * time.Millisecond))
	if !almostEqual(dt, 0.25) || !almostEqual(abs, 2.75) {
		t.Fatalf("second tick = (%v, %v), want (0.25, 2.75)", dt, abs)
	}
	// A long gap still shows up in absolute time.
	dt, abs = c.Tick(base.Add(3 * time.Second))
	if !almostEqual(dt, 2.75) || !almostEqual(abs, 5.5) {
		t.Fatalf("third tick = (%v, %v), want (2.75, 5.5)", dt, abs)
	}
}

func TestPolarHelpers(t *testing.T) {
	p := polar(math.Pi/2, 3)
	if !almostEqual(p.X, 0) || !almostEqual(p.Y, 3) {
		t.Fatalf("polar(pi/2, 3) = %v", p)
	}
	if a := polarAngle(r2.Point{X: -1, Y: 0}); !almostEqual(a, math.Pi) {
		t.Fatalf("polarAngle = %v, want pi", a)
	}
	if d := distance(r2.Point{X: 1, Y: 1}, r2.Point{X: 4, Y: 5}); !almostEqual(d, 5) {
		t.Fatalf("distance = %v, want 5", d)
	}
	if d2 := distanceSquared(r2.Point{X: 1, Y: 1}, r2.Point{X: 4, Y: 5}); !almostEqual(d2, 25) {
		t.Fatalf("distanceSquared = %v, want 25", d2)
	}
}

func TestColorHelpers(t *testing.T) {
	red := fromHSV(0, 1, 1)
	if !almostEqual(red.R, 1) || !almostEqual(red.G, 0) || !almostEqual(red.B, 0) {
		t.Fatalf("hue 0 = %v, want red", red)
	}
	if g := greyscale(colorful.Color{R: 0.3, G: 0.6, B: 0.9}); !almostEqual(g.R, 0.6) || g.R != g.G || g.G != g.B {
		t.Fatalf("greyscale = %v, want 0.6 grey", g)
	}
	if c := lerpColor(grey(0), grey(1), 0.25); !almostEqual(c.R, 0.25) {
		t.Fatalf("lerp = %v", c)
	}
	if rgba := toRGBA(colorful.Color{R: 2, G: -1, B: 0.5}); rgba.R != 255 || rgba.G != 0 || rgba.A != 255 {
		t.Fatalf("toRGBA = %v", rgba)
	}
	if hex := hexString(grey(0)); hex != "#000000" {
		t.Fatalf("hexString = %q", hex)
	}
}
