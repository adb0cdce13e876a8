package main

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
)

// fieldGrid describes the sampling lattice of the background field. Samples
// sit at multiples of pitch, up to and including the canvas edge.
type fieldGrid struct {
	cols, rows int
	pitch      float64
}

func newFieldGrid(width, height, pitch int) fieldGrid {
	return fieldGrid{
		cols:  width/pitch + 1,
		rows:  height/pitch + 1,
		pitch: float64(pitch),
	}
}

func (g fieldGrid) cellCount() int { return g.cols * g.rows }

// cellCenter returns the sample point of the cell at (col, row).
func (g fieldGrid) cellCenter(col, row int) r2.Point {
	return r2.Point{
		X: float64(col)*g.pitch + fieldCellCenterOffset,
		Y: float64(row)*g.pitch + fieldCellCenterOffset,
	}
}

// fieldSource is one oscillator's contribution to the field for a frame.
type fieldSource struct {
	pos   r2.Point
	color colorful.Color
}

// fieldParams carries the per-frame constants of the field formula.
type fieldParams struct {
	background    colorful.Color
	strength      float64
	midpoint      r2.Point
	circumscribed float64
}

// fieldBuffer stores the computed color of every grid cell, row-major.
type fieldBuffer struct {
	grid  fieldGrid
	cells []colorful.Color
}

// newFieldBuffer allocates a buffer sized for grid.
func newFieldBuffer(grid fieldGrid) *fieldBuffer {
	return &fieldBuffer{grid: grid, cells: make([]colorful.Color, grid.cellCount())}
}

func (b *fieldBuffer) at(col, row int) colorful.Color {
	return b.cells[row*b.grid.cols+col]
}

// fill sets every cell to c.
func (b *fieldBuffer) fill(c colorful.Color) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// computeRow evaluates every cell of one grid row.
func (b *fieldBuffer) computeRow(row int, sources []fieldSource, params fieldParams) {
	base := row * b.grid.cols
	for col := 0; col < b.grid.cols; col++ {
		b.cells[base+col] = fieldCellColor(b.grid.cellCenter(col, row), sources, params)
	}
}

// draw paints every cell as an overlapping centered square.
func (b *fieldBuffer) draw(s surface) {
	side := b.grid.pitch * fieldCellOverdraw
	for row := 0; row < b.grid.rows; row++ {
		for col := 0; col < b.grid.cols; col++ {
			s.DrawRect(b.grid.cellCenter(col, row), side, side, b.at(col, row), anchorCentered)
		}
	}
}

// fieldCellColor blends every source's color at p with inverse fourth-power
// distance weights, fades it radially, and mixes the result into the background.
func fieldCellColor(p r2.Point, sources []fieldSource, params fieldParams) colorful.Color {
	var sum colorful.Color
	totalFactor := 0.0
	for _, src := range sources {
		d2 := math.Max(distanceSquared(src.pos, p), fieldWeightEpsilon)
		factor := 1 / (d2 * d2)
		totalFactor += factor
		sum = addColor(sum, scaleColor(src.color, factor))
	}
	if totalFactor == 0 {
		return params.background
	}

	radial := math.Min(1, distance(p, params.midpoint)/params.circumscribed)
	raw := scaleColor(clampColor(scaleColor(sum, (1-radial)*fieldRadialGain/totalFactor)), fieldBrightness)
	return lerpColor(params.background, lerpColor(raw, greyscale(raw), fieldDesaturation), params.strength)
}

// fieldSolver evaluates the field for a frame into buf.
type fieldSolver interface {
	Compute(buf *fieldBuffer, sources []fieldSource, params fieldParams) error
	Name() string
	Close()
}

// computeField fills buf for the frame. A zero effect strength leaves the
// background flat and skips the solver.
func computeField(solver fieldSolver, buf *fieldBuffer, sources []fieldSource, params fieldParams) error {
	if params.strength == 0 {
		buf.fill(params.background)
		return nil
	}
	return solver.Compute(buf, sources, params)
}
