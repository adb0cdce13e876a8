package main

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestSineOscillatorPeriodic(t *testing.T) {
	o := sineOscillator{amplitude: 10, periodSeconds: 4, phase: 0.3, offset: 1}
	for _, ts := range []float64{0, 0.7, 1.9, 3.2} {
		if a, b := o.valueAt(ts), o.valueAt(ts+o.periodSeconds); !almostEqual(a, b) {
			t.Fatalf("value(%v) = %v, value(%v) = %v", ts, a, ts+o.periodSeconds, b)
		}
	}
	if v := o.valueAt(1 - 0.3*4/(2*math.Pi)); !almostEqual(v, 11) {
		t.Fatalf("peak = %v, want 11", v)
	}
}

func TestSineOscillatorDecay(t *testing.T) {
	o := sineOscillator{amplitude: 5, periodSeconds: 2, decayFactor: 0.5}
	for _, ts := range []float64{0.1, 1.3, 4.2, 9.9} {
		limit := 5 * math.Exp(-0.5*ts)
		if v := o.valueAt(ts); math.Abs(v) > limit+1e-12 {
			t.Fatalf("value(%v) = %v exceeds envelope %v", ts, v, limit)
		}
	}
}

func TestSineOscillatorStationary(t *testing.T) {
	o := sineOscillator{amplitude: 50, periodSeconds: math.Inf(1)}
	if !o.stationary() {
		t.Fatal("infinite period should be stationary")
	}
	for _, ts := range []float64{0, 1, 1e6} {
		if v := o.valueAt(ts); v != 0 {
			t.Fatalf("value(%v) = %v, want 0", ts, v)
		}
	}
}

func TestLineOscillatorUpdate(t *testing.T) {
	origin := r2.Point{X: 100, Y: 50}
	o := newLineOscillator(origin, r2.Point{X: 0, Y: 3}, sineOscillator{amplitude: 20, periodSeconds: 8}, oscillatorStyle{radius: 4})
	if o.currentPosition() != origin {
		t.Fatalf("initial position = %v, want origin", o.currentPosition())
	}
	if o.ray != (r2.Point{X: 0, Y: 1}) {
		t.Fatalf("ray not normalized: %v", o.ray)
	}

	o.update(0.016, 2)
	p := o.currentPosition()
	if !almostEqual(p.X, 100) || !almostEqual(p.Y, 70) {
		t.Fatalf("position at quarter period = %v, want (100, 70)", p)
	}
	// Position depends on absolute time only.
	o.update(123, 2)
	if o.currentPosition() != p {
		t.Fatalf("delta time changed position: %v", o.currentPosition())
	}
}

func TestLineOscillatorRender(t *testing.T) {
	style := oscillatorStyle{color: fromHSV(0.5, 1, 1), radius: 4, borderRadius: 1}
	o := newLineOscillator(r2.Point{X: 10, Y: 10}, r2.Point{X: 1}, sineOscillator{amplitude: 1, periodSeconds: 1}, style)

	var s recordingSurface
	o.render(&s)
	if len(s.calls) != 2 {
		t.Fatalf("got %d draw calls, want 2", len(s.calls))
	}
	ring, disc := s.calls[0], s.calls[1]
	if ring.mode != drawStroke || ring.radius != 5 || ring.color != grey(actorBorderGrey) {
		t.Fatalf("ring = %+v", ring)
	}
	if disc.mode != drawFill || disc.radius != 4 || disc.color != style.color {
		t.Fatalf("disc = %+v", disc)
	}

	o.style.borderRadius = 0
	s = recordingSurface{}
	o.render(&s)
	if len(s.calls) != 1 || s.calls[0].mode != drawFill {
		t.Fatalf("zero border radius drew %+v", s.calls)
	}
}
