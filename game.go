//go:build !sdl

package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// Game adapts the demo to Ebiten's update/draw loop.
type Game struct {
	demo  *demo
	clock *frameClock
	debug bool
}

// newGame wraps d; the clock starts on the first update.
func newGame(d *demo, debug bool) *Game {
	return &Game{
		demo:  d,
		clock: newFrameClock(d.cfg.startTimeSeconds),
		debug: debug,
	}
}

// Update advances the oscillators and the field to the current wall-clock time.
func (g *Game) Update() error {
	dt, abs := g.clock.Tick(time.Now())
	return g.demo.tick(dt, abs)
}

// Draw renders the field, the oscillators, the time readout and the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.demo.render(&ebitenSurface{dst: screen})
	text.Draw(screen, g.demo.readout(), basicfont.Face7x13, readoutX, readoutY, color.White)

	if g.debug {
		cells := g.demo.field.grid.cellCount()
		debugMsg := fmt.Sprintf("\n\nFPS: %.1f\nTPS: %.1f\nOscillators: %s (%v)\nField: %s cells (%s)\nField: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			humanize.Comma(int64(len(g.demo.actors))), g.demo.cfg.layout,
			humanize.Comma(int64(cells)), g.demo.solver.Name(),
			g.demo.lastFieldDuration.Seconds()*1000)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return w, h }

// ebitenSurface draws into an Ebiten image using the vector package.
type ebitenSurface struct {
	dst *ebiten.Image
}

func (s *ebitenSurface) Clear(c colorful.Color) {
	s.dst.Fill(toRGBA(c))
}

func (s *ebitenSurface) DrawCircle(center r2.Point, radius float64, c colorful.Color, mode drawMode) {
	x, y, r := float32(center.X), float32(center.Y), float32(radius)
	if mode == drawStroke {
		vector.StrokeCircle(s.dst, x, y, r, actorBorderStrokeWidth, toRGBA(c), true)
		return
	}
	vector.DrawFilledCircle(s.dst, x, y, r, toRGBA(c), true)
}

func (s *ebitenSurface) DrawRect(pt r2.Point, width, height float64, c colorful.Color, anchor rectAnchor) {
	x, y := pt.X, pt.Y
	if anchor == anchorCentered {
		x -= width / 2
		y -= height / 2
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), toRGBA(c), false)
}

// runDemo opens the window and blocks until it is closed.
func runDemo(d *demo, debug bool) error {
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(newGame(d, debug)); err != nil {
		return fmt.Errorf("running ebiten game: %w", err)
	}
	return nil
}
