package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSampleMotionLaw(t *testing.T) {
	law := sineOscillator{amplitude: 2, periodSeconds: 4}
	samples := sampleMotionLaw(law, 0, 4, 5)
	want := []float64{0, 2, 0, -2, 0}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples", len(samples))
	}
	for i := range want {
		if !almostEqual(samples[i], want[i]) {
			t.Fatalf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
	if got := sampleMotionLaw(law, 1, 4, 1); len(got) != 1 || !almostEqual(got[0], 2) {
		t.Fatalf("single sample = %v", got)
	}
}

func TestPlotActor(t *testing.T) {
	cfg := defaultDemoConfig()
	var out bytes.Buffer
	if err := plotActor(&out, cfg, testGeometry, 3, 1); err != nil {
		t.Fatalf("plotActor: %v", err)
	}
	if !strings.Contains(out.String(), "oscillator 3") {
		t.Fatalf("missing caption in:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "period") {
		t.Fatalf("missing period in caption:\n%s", out.String())
	}
}

func TestPlotActorRejectsBadInput(t *testing.T) {
	cfg := defaultDemoConfig()
	var out bytes.Buffer
	if err := plotActor(&out, cfg, testGeometry, cfg.oscillatorCount, 1); err == nil {
		t.Fatal("expected out of range error")
	}
	if err := plotActor(&out, cfg, testGeometry, -1, 1); err == nil {
		t.Fatal("expected out of range error for negative index")
	}
	if err := plotActor(&out, cfg, testGeometry, 0, 0); err == nil {
		t.Fatal("expected error for zero periods")
	}
}
