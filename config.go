package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas, timing, and field tuning constants used throughout the application.
// The field constants are visual tuning values and must stay in step with the
// OpenCL kernel source.
const (
	w, h                   = 400, 400
	windowScale            = 2
	windowTitle            = "Oscillator Field"
	defaultTPS             = 60
	fieldCellSize          = 3
	fieldCellOverdraw      = 1.5
	fieldCellCenterOffset  = 0.5
	fieldWeightEpsilon     = 0.001
	fieldRadialGain        = 3.0
	fieldBrightness        = 0.4
	fieldDesaturation      = 0.75
	actorBorderGrey        = 0.2
	actorBorderStrokeWidth = 1
	readoutX, readoutY     = 6, 16
	defaultProfileDuration = 15 * time.Second
)

// projectOntoSquare stretches each actor's amplitude so ring actors reach the
// canvas square instead of the inscribed circle. Reserved; kept off.
const projectOntoSquare = false

// layout selects how actors are placed on the canvas.
type layout int

const (
	layoutCircle layout = iota
	layoutClosedCircle
	layoutLine
)

var layoutNames = map[layout]string{
	layoutCircle:       "circle",
	layoutClosedCircle: "closedCircle",
	layoutLine:         "line",
}

func (l layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// parseLayout maps a layout name to its value.
func parseLayout(name string) (layout, error) {
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q (want circle, closedCircle or line)", name)
}

// demoConfig is the static configuration consumed by the demo.
type demoConfig struct {
	backgroundColor        colorful.Color
	backgroundEffectAmount float64
	borderColor            colorful.Color
	borderThickness        float64

	layout layout

	oscillatorCount int
	periodSeconds   float64

	startTimeSeconds           float64
	oscillatorDrawRadius       float64
	oscillatorDrawBorderRadius float64

	// oscillatorPeriodOffsetFactor is the amount each oscillator should be
	// slower than the previous one. Accepted and carried, but no formula reads it.
	oscillatorPeriodOffsetFactor float64
}

// defaultDemoConfig returns the stock closed-ring configuration.
func defaultDemoConfig() demoConfig {
	return demoConfig{
		backgroundColor:              grey(0.1),
		backgroundEffectAmount:       0.25,
		borderColor:                  grey(0.2),
		borderThickness:              0,
		layout:                       layoutClosedCircle,
		oscillatorCount:              144,
		periodSeconds:                8,
		startTimeSeconds:             0,
		oscillatorDrawRadius:         4,
		oscillatorDrawBorderRadius:   1,
		oscillatorPeriodOffsetFactor: 1,
	}
}

var (
	errNoOscillators = errors.New("oscillator count must be positive")
	errBadPeriod     = errors.New("period must be positive")
)

// validate rejects configurations the demo cannot run with.
func (c demoConfig) validate() error {
	if c.oscillatorCount <= 0 {
		return errNoOscillators
	}
	if !(c.periodSeconds > 0) {
		return errBadPeriod
	}
	if c.backgroundEffectAmount < 0 || c.backgroundEffectAmount > 1 {
		return fmt.Errorf("background effect %.3f outside [0, 1]", c.backgroundEffectAmount)
	}
	if c.oscillatorDrawRadius < 0 || c.oscillatorDrawBorderRadius < 0 || c.borderThickness < 0 {
		return errors.New("radii and border thickness must not be negative")
	}
	if _, ok := layoutNames[c.layout]; !ok {
		return fmt.Errorf("unknown layout %v", c.layout)
	}
	return nil
}
