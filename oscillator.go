package main

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
)

// actor is anything advanced and drawn once per frame.
type actor interface {
	update(deltaTime, absoluteTime float64)
	render(s surface)
}

// sineOscillator is a decayable sinusoid evaluated against absolute time.
// periodSeconds must not be zero; +Inf marks a stationary oscillator.
type sineOscillator struct {
	amplitude     float64
	periodSeconds float64
	// phase is added to the angular term as-is.
	phase  float64
	offset float64
	// decayFactor scales the value by exp(-decayFactor*t); 0 disables decay.
	decayFactor float64
}

// valueAt returns the displacement at t seconds.
func (o sineOscillator) valueAt(t float64) float64 {
	angle := o.phase
	if !math.IsInf(o.periodSeconds, 0) {
		angle += 2 * math.Pi * t / o.periodSeconds
	}
	x := o.amplitude*math.Sin(angle) + o.offset
	if o.decayFactor != 0 {
		return x * math.Exp(-o.decayFactor*t)
	}
	return x
}

// stationary reports whether the oscillator never moves.
func (o sineOscillator) stationary() bool {
	return math.IsInf(o.periodSeconds, 0)
}

// oscillatorStyle describes how an oscillator disc is drawn.
type oscillatorStyle struct {
	color  colorful.Color
	radius float64
	// borderRadius is the gap between the disc and its outline ring; 0 draws no ring.
	borderRadius float64
}

// lineOscillator moves along a fixed ray from its origin.
type lineOscillator struct {
	origin r2.Point
	ray    r2.Point
	law    sineOscillator
	style  oscillatorStyle
	pos    r2.Point
}

// newLineOscillator normalizes ray and parks the oscillator at its origin.
func newLineOscillator(origin, ray r2.Point, law sineOscillator, style oscillatorStyle) *lineOscillator {
	return &lineOscillator{
		origin: origin,
		ray:    ray.Normalize(),
		law:    law,
		style:  style,
		pos:    origin,
	}
}

func (o *lineOscillator) currentPosition() r2.Point { return o.pos }

// update moves the oscillator to its position at absoluteTime. deltaTime is unused.
func (o *lineOscillator) update(_, absoluteTime float64) {
	o.pos = o.origin.Add(o.ray.Mul(o.law.valueAt(absoluteTime)))
}

func (o *lineOscillator) render(s surface) {
	if o.style.borderRadius > 0 {
		s.DrawCircle(o.pos, o.style.radius+o.style.borderRadius, grey(actorBorderGrey), drawStroke)
	}
	s.DrawCircle(o.pos, o.style.radius, o.style.color, drawFill)
}
