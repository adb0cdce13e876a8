package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	plotSamples = 120
	plotHeight  = 12
)

var plotStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}).
	Padding(0, 1)

// sampleMotionLaw evaluates law at n evenly spaced times in [start, start+span].
func sampleMotionLaw(law sineOscillator, start, span float64, n int) []float64 {
	if n < 2 {
		return []float64{law.valueAt(start)}
	}
	out := make([]float64, n)
	step := span / float64(n-1)
	for i := range out {
		out[i] = law.valueAt(start + float64(i)*step)
	}
	return out
}

// plotActor writes an ASCII chart of oscillator index's displacement over
// periods nominal periods, starting at the configured start time.
func plotActor(out io.Writer, cfg demoConfig, geom canvasGeometry, index int, periods float64) error {
	if index < 0 || index >= cfg.oscillatorCount {
		return fmt.Errorf("oscillator index %d out of range [0, %d)", index, cfg.oscillatorCount)
	}
	if !(periods > 0) {
		return fmt.Errorf("plot periods must be positive, got %g", periods)
	}
	law := buildEnsemble(cfg, geom)[index].law
	span := cfg.periodSeconds * periods

	caption := fmt.Sprintf("oscillator %d, %v layout, %.2fs from t=%g", index, cfg.layout, span, cfg.startTimeSeconds)
	if law.stationary() {
		caption += " (stationary)"
	} else {
		caption += fmt.Sprintf(" (period %.3fs)", law.periodSeconds)
	}
	chart := asciigraph.Plot(
		sampleMotionLaw(law, cfg.startTimeSeconds, span, plotSamples),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotSamples),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	_, err := fmt.Fprintln(out, plotStyle.Render(chart))
	return err
}
