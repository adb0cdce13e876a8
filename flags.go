package main

import (
	"flag"
	"fmt"
)

// Command-line flags that override the stock demo configuration and control
// optional runtime behavior. Defaults mirror defaultDemoConfig.
var (
	// layoutFlag selects circle, closedCircle or line placement.
	layoutFlag = flag.String("layout", "closedCircle", "oscillator layout: circle, closedCircle or line")

	countFlag  = flag.Int("count", 144, "number of oscillators")
	periodFlag = flag.Float64("period", 8, "nominal period in seconds")
	startFlag  = flag.Float64("start", 0, "start time offset in seconds")

	// effectFlag sets how strongly the derived color field tints the background.
	effectFlag = flag.Float64("effect", 0.25, "background effect strength (0-1); 0 disables the color field")

	borderThicknessFlag = flag.Float64("border-thickness", 0, "thickness of the circle layout border")
	radiusFlag          = flag.Float64("radius", 4, "oscillator disc radius")
	borderRadiusFlag    = flag.Float64("border-radius", 1, "gap between an oscillator disc and its outline ring (0 = no ring)")

	// periodOffsetFactorFlag is accepted for configuration compatibility; no formula reads it yet.
	periodOffsetFactorFlag = flag.Float64("period-offset-factor", 1, "amount each oscillator is slower than the previous (reserved)")

	// fieldWorkersFlag sets the CPU field worker count; 0 uses one per CPU.
	fieldWorkersFlag = flag.Int("field-workers", 0, "goroutines used to compute the color field (0 = one per CPU)")

	// openCLFlag tries the OpenCL field solver before falling back to the CPU.
	openCLFlag = flag.Bool("opencl", false, "compute the color field with OpenCL when built with -tags opencl")

	// debugFlag enables the FPS and field timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and field timing overlay")

	cpuProfileFlag      = flag.String("cpuprofile", "", "write a CPU profile to this file")
	profileDurationFlag = flag.Duration("profile-duration", defaultProfileDuration, "how long to record the CPU profile")

	// plotActorFlag prints one oscillator's motion as a chart and exits instead of opening a window.
	plotActorFlag   = flag.Int("plot-actor", -1, "plot the displacement of this oscillator index and exit")
	plotPeriodsFlag = flag.Float64("plot-periods", 2, "number of nominal periods covered by -plot-actor")
)

// configFromFlags assembles and validates the demo configuration from parsed flags.
func configFromFlags() (demoConfig, error) {
	cfg := defaultDemoConfig()
	l, err := parseLayout(*layoutFlag)
	if err != nil {
		return cfg, err
	}
	cfg.layout = l
	cfg.oscillatorCount = *countFlag
	cfg.periodSeconds = *periodFlag
	cfg.startTimeSeconds = *startFlag
	cfg.backgroundEffectAmount = *effectFlag
	cfg.borderThickness = *borderThicknessFlag
	cfg.oscillatorDrawRadius = *radiusFlag
	cfg.oscillatorDrawBorderRadius = *borderRadiusFlag
	cfg.oscillatorPeriodOffsetFactor = *periodOffsetFactorFlag
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
