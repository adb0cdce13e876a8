package main

import (
	"math"
	"time"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
)

// drawMode selects whether a circle is filled or outlined.
type drawMode int

const (
	drawFill drawMode = iota
	drawStroke
)

// rectAnchor selects whether a rectangle's point is its corner or its center.
type rectAnchor int

const (
	anchorOrigin rectAnchor = iota
	anchorCentered
)

// surface is the drawing target the demo renders into. Coordinates are in
// canvas units; backends scale to device pixels themselves.
type surface interface {
	Clear(c colorful.Color)
	DrawCircle(center r2.Point, radius float64, c colorful.Color, mode drawMode)
	DrawRect(pt r2.Point, width, height float64, c colorful.Color, anchor rectAnchor)
}

// canvasGeometry exposes the derived measurements of a rectangular canvas.
type canvasGeometry struct {
	width, height float64
}

func (g canvasGeometry) Midpoint() r2.Point {
	return r2.Point{X: g.width / 2, Y: g.height / 2}
}

// InscribedRadius is the radius of the largest circle that fits inside the canvas.
func (g canvasGeometry) InscribedRadius() float64 {
	return math.Min(g.width, g.height) / 2
}

// CircumscribedRadius is the distance from the midpoint to a canvas corner.
func (g canvasGeometry) CircumscribedRadius() float64 {
	return math.Hypot(g.width/2, g.height/2)
}

// frameClock converts wall-clock ticks into the (delta, absolute) seconds pair
// handed to the demo each frame. Absolute time keeps accumulating while the
// host throttles the loop.
type frameClock struct {
	start   time.Time
	last    time.Duration
	offset  float64
	started bool
}

func newFrameClock(startOffsetSeconds float64) *frameClock {
	return &frameClock{offset: startOffsetSeconds}
}

// Tick records a frame at now. The first call starts the clock.
func (c *frameClock) Tick(now time.Time) (dt, absolute float64) {
	if !c.started {
		c.start = now
		c.started = true
	}
	elapsed := now.Sub(c.start)
	dt = (elapsed - c.last).Seconds()
	c.last = elapsed
	return dt, elapsed.Seconds() + c.offset
}
