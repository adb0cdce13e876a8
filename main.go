package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
)

// newFieldSolver picks the OpenCL solver when requested and available,
// otherwise the CPU worker pool.
func newFieldSolver(grid fieldGrid, maxSources int, useOpenCL bool, workers int) fieldSolver {
	if useOpenCL {
		solver, err := newOpenCLFieldSolver(grid, maxSources)
		if err == nil {
			log.Printf("OpenCL field solver enabled (device: %s)", solver.DeviceName())
			return solver
		}
		log.Printf("OpenCL initialization failed, using CPU: %v", err)
	}
	return newCPUFieldSolver(workers)
}

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	cfg, err := configFromFlags()
	if err != nil {
		log.Fatalf("%v", err)
	}
	geom := canvasGeometry{width: w, height: h}

	if *plotActorFlag >= 0 {
		if err := plotActor(os.Stdout, cfg, geom, *plotActorFlag, *plotPeriodsFlag); err != nil {
			log.Fatalf("plot failed: %v", err)
		}
		return
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag, *profileDurationFlag)
		if err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
		defer stop()
		log.Printf("Recording CPU profile to %s for %s", *cpuProfileFlag, *profileDurationFlag)
	}

	grid := newFieldGrid(w, h, fieldCellSize)
	solver := newFieldSolver(grid, cfg.oscillatorCount, *openCLFlag, *fieldWorkersFlag)
	defer solver.Close()

	d := newDemo(cfg, geom, solver)
	log.Printf("%s oscillators on a %v layout, period %gs, %s field cells via %s solver",
		humanize.Comma(int64(cfg.oscillatorCount)), cfg.layout, cfg.periodSeconds,
		humanize.Comma(int64(grid.cellCount())), solver.Name())

	if err := runDemo(d, *debugFlag); err != nil {
		log.Printf("demo stopped: %v", err)
	}
}
