//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
	"github.com/lucasb-eyer/go-colorful"
)

type openCLFieldSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posBuf     *cl.MemObject
	colorBuf   *cl.MemObject
	outBuf     *cl.MemObject
	grid       fieldGrid
	maxSources int
	positions  []float32
	colors     []float32
	out        []float32
	deviceName string
}

const fieldKernelBody = `__kernel void field_cells(
    const int cols,
    const int rows,
    const float pitch,
    const int source_count,
    const float mid_x,
    const float mid_y,
    const float circumscribed,
    const float strength,
    const float bg_r,
    const float bg_g,
    const float bg_b,
    __global const float* positions,
    __global const float* colors,
    __global float* out)
{
    int idx = get_global_id(0);
    if (idx >= cols * rows) {
        return;
    }
    float px = (idx % cols) * pitch + CELL_OFFSET;
    float py = (idx / cols) * pitch + CELL_OFFSET;
    float sr = 0.0f;
    float sg = 0.0f;
    float sb = 0.0f;
    float total = 0.0f;
    for (int i = 0; i < source_count; i++) {
        float dx = positions[2 * i] - px;
        float dy = positions[2 * i + 1] - py;
        float d2 = fmax(dx * dx + dy * dy, WEIGHT_EPSILON);
        float factor = 1.0f / (d2 * d2);
        total += factor;
        sr += colors[3 * i] * factor;
        sg += colors[3 * i + 1] * factor;
        sb += colors[3 * i + 2] * factor;
    }
    if (total <= 0.0f) {
        out[3 * idx] = bg_r;
        out[3 * idx + 1] = bg_g;
        out[3 * idx + 2] = bg_b;
        return;
    }
    float mx = px - mid_x;
    float my = py - mid_y;
    float radial = fmin(1.0f, sqrt(mx * mx + my * my) / circumscribed);
    float k = (1.0f - radial) * RADIAL_GAIN / total;
    float rr = clamp(sr * k, 0.0f, 1.0f) * BRIGHTNESS;
    float rg = clamp(sg * k, 0.0f, 1.0f) * BRIGHTNESS;
    float rb = clamp(sb * k, 0.0f, 1.0f) * BRIGHTNESS;
    float grey = (rr + rg + rb) / 3.0f;
    float fr = rr + (grey - rr) * DESATURATION;
    float fg = rg + (grey - rg) * DESATURATION;
    float fb = rb + (grey - rb) * DESATURATION;
    out[3 * idx] = bg_r + (fr - bg_r) * strength;
    out[3 * idx + 1] = bg_g + (fg - bg_g) * strength;
    out[3 * idx + 2] = bg_b + (fb - bg_b) * strength;
}`

// fieldKernelSource prefixes the kernel with the tuning constants from config.go.
func fieldKernelSource() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#define CELL_OFFSET %ef\n", float32(fieldCellCenterOffset))
	fmt.Fprintf(&sb, "#define WEIGHT_EPSILON %ef\n", float32(fieldWeightEpsilon))
	fmt.Fprintf(&sb, "#define RADIAL_GAIN %ef\n", float32(fieldRadialGain))
	fmt.Fprintf(&sb, "#define BRIGHTNESS %ef\n", float32(fieldBrightness))
	fmt.Fprintf(&sb, "#define DESATURATION %ef\n", float32(fieldDesaturation))
	sb.WriteString(fieldKernelBody)
	return sb.String()
}

func newOpenCLFieldSolver(grid fieldGrid, maxSources int) (*openCLFieldSolver, error) {
	if maxSources <= 0 {
		return nil, errors.New("OpenCL field solver needs at least one source")
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLFieldSolver{
		grid:       grid,
		maxSources: maxSources,
		positions:  make([]float32, 2*maxSources),
		colors:     make([]float32, 3*maxSources),
		out:        make([]float32, 3*grid.cellCount()),
		deviceName: device.Name(),
	}
	if err := s.init(device); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// pickDevice returns the first device of the given type on any platform.
func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// init creates the OpenCL objects; Close releases whatever was created on failure.
func (s *openCLFieldSolver) init(device *cl.Device) error {
	var err error
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{fieldKernelSource()}); err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("field_cells"); err != nil {
		return fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	floatSize := int(unsafe.Sizeof(float32(0)))
	if s.posBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, len(s.positions)*floatSize); err != nil {
		return fmt.Errorf("allocating position buffer: %w", err)
	}
	if s.colorBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, len(s.colors)*floatSize); err != nil {
		return fmt.Errorf("allocating color buffer: %w", err)
	}
	if s.outBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, len(s.out)*floatSize); err != nil {
		return fmt.Errorf("allocating output buffer: %w", err)
	}
	return nil
}

func (s *openCLFieldSolver) Name() string { return "opencl" }

// Compute uploads the frame's sources, runs one kernel pass and reads the cells back.
func (s *openCLFieldSolver) Compute(buf *fieldBuffer, sources []fieldSource, params fieldParams) error {
	if buf.grid != s.grid {
		return fmt.Errorf("field grid %dx%d does not match solver grid %dx%d",
			buf.grid.cols, buf.grid.rows, s.grid.cols, s.grid.rows)
	}
	if len(sources) > s.maxSources {
		return fmt.Errorf("%d field sources exceed solver capacity %d", len(sources), s.maxSources)
	}
	for i, src := range sources {
		s.positions[2*i] = float32(src.pos.X)
		s.positions[2*i+1] = float32(src.pos.Y)
		s.colors[3*i] = float32(src.color.R)
		s.colors[3*i+1] = float32(src.color.G)
		s.colors[3*i+2] = float32(src.color.B)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, false, 0, s.positions, nil); err != nil {
		return fmt.Errorf("writing position buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.colorBuf, false, 0, s.colors, nil); err != nil {
		return fmt.Errorf("writing color buffer: %w", err)
	}
	bg := params.background
	if err := s.kernel.SetArgs(
		int32(s.grid.cols),
		int32(s.grid.rows),
		float32(s.grid.pitch),
		int32(len(sources)),
		float32(params.midpoint.X),
		float32(params.midpoint.Y),
		float32(params.circumscribed),
		float32(params.strength),
		float32(bg.R),
		float32(bg.G),
		float32(bg.B),
		s.posBuf,
		s.colorBuf,
		s.outBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{s.grid.cellCount()}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, s.out, nil); err != nil {
		return fmt.Errorf("reading output buffer: %w", err)
	}
	for i := range buf.cells {
		buf.cells[i] = colorful.Color{
			R: float64(s.out[3*i]),
			G: float64(s.out[3*i+1]),
			B: float64(s.out[3*i+2]),
		}
	}
	return nil
}

func (s *openCLFieldSolver) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.colorBuf != nil {
		s.colorBuf.Release()
		s.colorBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}
