package main

import (
	"fmt"
	"math"
	"time"
)

// demo owns the oscillator ensemble and the background field for one canvas.
type demo struct {
	cfg    demoConfig
	geom   canvasGeometry
	actors []*lineOscillator

	field   *fieldBuffer
	solver  fieldSolver
	sources []fieldSource

	absoluteTime      float64
	lastFieldDuration time.Duration
}

// newDemo builds the ensemble for cfg. cfg must pass validate.
func newDemo(cfg demoConfig, geom canvasGeometry, solver fieldSolver) *demo {
	actors := buildEnsemble(cfg, geom)
	d := &demo{
		cfg:     cfg,
		geom:    geom,
		actors:  actors,
		field:   newFieldBuffer(newFieldGrid(int(geom.width), int(geom.height), fieldCellSize)),
		solver:  solver,
		sources: make([]fieldSource, len(actors)),
	}
	for i, a := range actors {
		d.sources[i] = fieldSource{pos: a.currentPosition(), color: a.style.color}
	}
	d.field.fill(cfg.backgroundColor)
	return d
}

// tick advances every oscillator to absoluteTime and recomputes the field.
func (d *demo) tick(deltaTime, absoluteTime float64) error {
	d.absoluteTime = absoluteTime
	for i, a := range d.actors {
		a.update(deltaTime, absoluteTime)
		d.sources[i].pos = a.currentPosition()
	}

	start := time.Now()
	err := computeField(d.solver, d.field, d.sources, d.fieldParams())
	d.lastFieldDuration = time.Since(start)
	if err != nil {
		return fmt.Errorf("computing field with %s solver: %w", d.solver.Name(), err)
	}
	return nil
}

func (d *demo) fieldParams() fieldParams {
	return fieldParams{
		background:    d.cfg.backgroundColor,
		strength:      d.cfg.backgroundEffectAmount,
		midpoint:      d.geom.Midpoint(),
		circumscribed: d.geom.CircumscribedRadius(),
	}
}

// render draws the frame: background, ring frame, field cells, then oscillators
// in ensemble order.
func (d *demo) render(s surface) {
	s.Clear(d.cfg.backgroundColor)

	if d.cfg.layout == layoutCircle {
		mid := d.geom.Midpoint()
		s.DrawCircle(mid, d.geom.InscribedRadius(), d.cfg.borderColor, drawFill)
		s.DrawCircle(mid, d.geom.InscribedRadius()-d.cfg.borderThickness, d.cfg.backgroundColor, drawFill)
	}

	d.field.draw(s)

	for _, a := range d.actors {
		a.render(s)
	}
}

// readout is the elapsed-time caption, rounded to centiseconds.
func (d *demo) readout() string {
	return fmt.Sprintf("Time: %g", math.Floor(d.absoluteTime*100+0.5)/100)
}
