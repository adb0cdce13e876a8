package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function is safe to call more than once; it also runs after duration.
func startCPUProfile(path string, duration time.Duration) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	if duration > 0 {
		time.AfterFunc(duration, stop)
	}
	return stop, nil
}
