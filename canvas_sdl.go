//go:build sdl

package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
)

// canvasSurface draws through an HTML5-style canvas, scaling canvas units to
// window pixels.
type canvasSurface struct {
	cv    *canvas.Canvas
	scale float64
}

func (s *canvasSurface) Clear(c colorful.Color) {
	s.cv.SetFillStyle(hexString(c))
	s.cv.FillRect(0, 0, float64(s.cv.Width()), float64(s.cv.Height()))
}

func (s *canvasSurface) DrawCircle(center r2.Point, radius float64, c colorful.Color, mode drawMode) {
	s.cv.BeginPath()
	s.cv.Arc(center.X*s.scale, center.Y*s.scale, radius*s.scale, 0, 2*math.Pi, false)
	if mode == drawStroke {
		s.cv.SetStrokeStyle(hexString(c))
		s.cv.SetLineWidth(actorBorderStrokeWidth * s.scale)
		s.cv.Stroke()
		return
	}
	s.cv.SetFillStyle(hexString(c))
	s.cv.Fill()
}

func (s *canvasSurface) DrawRect(pt r2.Point, width, height float64, c colorful.Color, anchor rectAnchor) {
	x, y := pt.X, pt.Y
	if anchor == anchorCentered {
		x -= width / 2
		y -= height / 2
	}
	s.cv.SetFillStyle(hexString(c))
	s.cv.FillRect(x*s.scale, y*s.scale, width*s.scale, height*s.scale)
}

// runDemo opens an SDL window and drives the demo once per vsync frame.
// With debug set the time readout is logged once per second, as no canvas font is loaded.
func runDemo(d *demo, debug bool) error {
	wnd, cv, err := sdlcanvas.CreateWindow(w*windowScale, h*windowScale, windowTitle)
	if err != nil {
		return fmt.Errorf("creating sdl window: %w", err)
	}
	defer wnd.Destroy()

	s := &canvasSurface{cv: cv, scale: windowScale}
	clock := newFrameClock(d.cfg.startTimeSeconds)
	var loopErr error
	var lastReadout time.Time
	wnd.MainLoop(func() {
		now := time.Now()
		dt, abs := clock.Tick(now)
		if err := d.tick(dt, abs); err != nil {
			loopErr = err
			wnd.Close()
			return
		}
		d.render(s)
		if debug && now.Sub(lastReadout) >= time.Second {
			log.Printf("%s (field %.2f ms via %s)", d.readout(), d.lastFieldDuration.Seconds()*1000, d.solver.Name())
			lastReadout = now
		}
	})
	return loopErr
}
