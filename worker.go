package main

import (
	"runtime"
	"sync"
)

// fieldJob is the frame input shared by all worker goroutines.
type fieldJob struct {
	buf     *fieldBuffer
	sources []fieldSource
	params  fieldParams
}

// cpuFieldSolver evaluates the field on the CPU. Rows are dealt out to a fixed
// set of worker goroutines that sleep between frames.
type cpuFieldSolver struct {
	workerCount int

	workerMu      sync.Mutex
	workerCond    *sync.Cond
	workerStep    int
	workerPending int
	workerRows    [][]int
	assignedRows  int
	job           fieldJob
	closed        bool

	workersStarted bool
}

// newCPUFieldSolver creates a solver with workers goroutines. Non-positive
// values use one worker per CPU; a single worker computes inline.
func newCPUFieldSolver(workers int) *cpuFieldSolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s := &cpuFieldSolver{workerCount: workers}
	s.workerCond = sync.NewCond(&s.workerMu)
	return s
}

func (s *cpuFieldSolver) Name() string { return "cpu" }

// Compute evaluates every row of buf and returns once all rows are written.
func (s *cpuFieldSolver) Compute(buf *fieldBuffer, sources []fieldSource, params fieldParams) error {
	if s.workerCount == 1 {
		for row := 0; row < buf.grid.rows; row++ {
			buf.computeRow(row, sources, params)
		}
		return nil
	}
	s.startWorkers()

	s.workerMu.Lock()
	if s.assignedRows != buf.grid.rows {
		s.workerRows = assignRows(s.workerCount, buf.grid.rows)
		s.assignedRows = buf.grid.rows
	}
	s.job = fieldJob{buf: buf, sources: sources, params: params}
	s.workerPending = s.workerCount
	s.workerStep++
	s.workerCond.Broadcast()
	for s.workerPending > 0 {
		s.workerCond.Wait()
	}
	s.job = fieldJob{}
	s.workerMu.Unlock()
	return nil
}

// Close stops the worker goroutines. The solver must not be used afterwards.
func (s *cpuFieldSolver) Close() {
	s.workerMu.Lock()
	s.closed = true
	s.workerCond.Broadcast()
	s.workerMu.Unlock()
}

// startWorkers launches the background goroutines on first use.
func (s *cpuFieldSolver) startWorkers() {
	if s.workersStarted {
		return
	}
	s.workersStarted = true
	for i := 0; i < s.workerCount; i++ {
		go s.workerLoop(i)
	}
}

// workerLoop evaluates the rows assigned to worker index once per step.
func (s *cpuFieldSolver) workerLoop(index int) {
	lastStep := 0
	s.workerMu.Lock()
	for {
		for s.workerStep == lastStep && !s.closed {
			s.workerCond.Wait()
		}
		if s.closed {
			s.workerMu.Unlock()
			return
		}
		lastStep = s.workerStep
		job := s.job
		var rows []int
		if index < len(s.workerRows) {
			rows = s.workerRows[index]
		}
		s.workerMu.Unlock()

		for _, row := range rows {
			job.buf.computeRow(row, job.sources, job.params)
		}

		s.workerMu.Lock()
		s.workerPending--
		if s.workerPending == 0 {
			s.workerCond.Broadcast()
		}
	}
}

// assignRows distributes grid rows across workers in round robin fashion.
func assignRows(workerCount, rows int) [][]int {
	if workerCount < 1 {
		workerCount = 1
	}
	assigned := make([][]int, workerCount)
	for row := 0; row < rows; row++ {
		idx := row % workerCount
		assigned[idx] = append(assigned[idx], row)
	}
	return assigned
}
