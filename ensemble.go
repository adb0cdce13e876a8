package main

import (
	"math"

	"github.com/golang/geo/r2"
)

var _ actor = (*lineOscillator)(nil)

// decayIndex ranks an oscillator for frequency assignment. The closed circle
// uses a triangle peaking at the ensemble midpoint so the seam moves slowest.
func decayIndex(l layout, idx, n int) float64 {
	if l == layoutClosedCircle {
		half := float64(n) / 2
		return half * (1 - math.Abs(2*float64(idx)/float64(n)-1))
	}
	return float64(idx)
}

// periodForDecayIndex converts a decay index into an oscillation period.
// A zero index has no frequency; it reports ok=false and an infinite period,
// which sineOscillator treats as stationary.
func periodForDecayIndex(index, periodSeconds float64, n int) (period float64, ok bool) {
	freq := index / (periodSeconds * float64(n))
	if freq == 0 {
		return math.Inf(1), false
	}
	return 1 / freq, true
}

// oscillatorAmplitude is the shared displacement reach of every oscillator.
func oscillatorAmplitude(cfg demoConfig, geom canvasGeometry) float64 {
	return geom.InscribedRadius() - cfg.oscillatorDrawRadius - cfg.borderThickness
}

// squareProjectionScale stretches a ray so its tip touches the bounding square.
// Returns 1 while projectOntoSquare is off.
func squareProjectionScale(ray r2.Point) float64 {
	if !projectOntoSquare {
		return 1
	}
	ang := polarAngle(ray.Normalize())
	return 1 / math.Max(math.Abs(math.Cos(ang)), math.Abs(math.Sin(ang)))
}

// placement returns the origin and ray for the oscillator at idx.
func placement(cfg demoConfig, geom canvasGeometry, idx int) (origin, ray r2.Point) {
	f := float64(idx) / float64(cfg.oscillatorCount)
	if cfg.layout == layoutLine {
		yOffset := cfg.oscillatorDrawRadius + f*(geom.height-2*cfg.oscillatorDrawRadius)
		return r2.Point{X: geom.width / 2, Y: yOffset}, r2.Point{X: 1, Y: 0}
	}
	return geom.Midpoint(), polar(2*math.Pi*f, 1)
}

// buildEnsemble constructs the oscillators described by cfg. cfg must pass validate.
func buildEnsemble(cfg demoConfig, geom canvasGeometry) []*lineOscillator {
	n := cfg.oscillatorCount
	amplitude := oscillatorAmplitude(cfg, geom)
	actors := make([]*lineOscillator, 0, n)
	for idx := 0; idx < n; idx++ {
		f := float64(idx) / float64(n)
		origin, ray := placement(cfg, geom, idx)
		period, _ := periodForDecayIndex(decayIndex(cfg.layout, idx, n), cfg.periodSeconds, n)
		actors = append(actors, newLineOscillator(
			origin,
			ray,
			sineOscillator{
				amplitude:     amplitude * squareProjectionScale(ray),
				periodSeconds: period,
			},
			oscillatorStyle{
				color:        fromHSV(f, 1, 1),
				radius:       cfg.oscillatorDrawRadius,
				borderRadius: cfg.oscillatorDrawBorderRadius,
			},
		))
	}
	return actors
}
