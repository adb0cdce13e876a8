//go:build !opencl

package main

import "errors"

var errOpenCLDisabled = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type openCLFieldSolver struct{}

func newOpenCLFieldSolver(_ fieldGrid, _ int) (*openCLFieldSolver, error) {
	return nil, errOpenCLDisabled
}

func (s *openCLFieldSolver) Compute(_ *fieldBuffer, _ []fieldSource, _ fieldParams) error {
	return errors.New("OpenCL field solver unavailable")
}

func (s *openCLFieldSolver) Name() string { return "opencl" }

func (s *openCLFieldSolver) Close() {}

func (s *openCLFieldSolver) DeviceName() string { return "" }
