//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	cl "github.com/jgillich/go-opencl/cl"

	"FallingSand/sand"
)

const colourKernelSource = `
__kernel void colourise(
    const int size,
    const int background,
    __global const int* cells,
    __global int* pixels)
{
    int idx = get_global_id(0);
    if (idx >= size) {
        return;
    }
    int c = cells[idx];
    pixels[idx] = c == 0 ? background : c;
}`

// openCLColouriser maps a frame of packed cell colours to RGBA bytes on an
// OpenCL device, substituting the background for empty cells.
type openCLColouriser struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	cellBuf    *cl.MemObject
	pixelBuf   *cl.MemObject
	size       int
	deviceName string
}

func newOpenCLColouriser(width, height int, background sand.Colour) (*openCLColouriser, error) {
	device, err := pickOpenCLDevice()
	if err != nil {
		return nil, err
	}
	c := &openCLColouriser{size: width * height, deviceName: device.Name()}
	fail := func(err error) (*openCLColouriser, error) {
		c.Close()
		return nil, err
	}

	if c.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fail(fmt.Errorf("creating OpenCL context: %w", err))
	}
	if c.queue, err = c.context.CreateCommandQueue(device, 0); err != nil {
		return fail(fmt.Errorf("creating OpenCL command queue: %w", err))
	}
	if c.program, err = c.context.CreateProgramWithSource([]string{colourKernelSource}); err != nil {
		return fail(fmt.Errorf("creating OpenCL program: %w", err))
	}
	if err := c.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fail(fmt.Errorf("building OpenCL program: %s", string(buildErr)))
		}
		return fail(fmt.Errorf("building OpenCL program: %w", err))
	}
	if c.kernel, err = c.program.CreateKernel("colourise"); err != nil {
		return fail(fmt.Errorf("creating OpenCL kernel: %w", err))
	}
	byteLen := c.size * 4
	if c.cellBuf, err = c.context.CreateEmptyBuffer(cl.MemReadOnly, byteLen); err != nil {
		return fail(fmt.Errorf("allocating cell buffer: %w", err))
	}
	if c.pixelBuf, err = c.context.CreateEmptyBuffer(cl.MemWriteOnly, byteLen); err != nil {
		return fail(fmt.Errorf("allocating pixel buffer: %w", err))
	}
	if err := c.kernel.SetArgs(int32(c.size), int32(background), c.cellBuf, c.pixelBuf); err != nil {
		return fail(fmt.Errorf("binding kernel arguments: %w", err))
	}
	return c, nil
}

// pickOpenCLDevice prefers the first GPU and falls back to the first CPU device.
func pickOpenCLDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

// Colourise writes RGBA bytes for src into dst.
func (c *openCLColouriser) Colourise(dst []byte, src []sand.Colour) error {
	if c.kernel == nil {
		return errors.New("OpenCL colouriser closed")
	}
	byteLen := c.size * 4
	if len(src) != c.size || len(dst) < byteLen {
		return fmt.Errorf("frame size mismatch: %d cells, %d bytes (want %d cells)", len(src), len(dst), c.size)
	}
	if _, err := c.queue.EnqueueWriteBuffer(c.cellBuf, false, 0, byteLen, unsafe.Pointer(&src[0]), nil); err != nil {
		return fmt.Errorf("uploading cells: %w", err)
	}
	if _, err := c.queue.EnqueueNDRangeKernel(c.kernel, nil, []int{c.size}, nil, nil); err != nil {
		return fmt.Errorf("running colourise kernel: %w", err)
	}
	if _, err := c.queue.EnqueueReadBuffer(c.pixelBuf, true, 0, byteLen, unsafe.Pointer(&dst[0]), nil); err != nil {
		return fmt.Errorf("reading pixels: %w", err)
	}
	return nil
}

func (c *openCLColouriser) Close() {
	if c.pixelBuf != nil {
		c.pixelBuf.Release()
		c.pixelBuf = nil
	}
	if c.cellBuf != nil {
		c.cellBuf.Release()
		c.cellBuf = nil
	}
	if c.kernel != nil {
		c.kernel.Release()
		c.kernel = nil
	}
	if c.program != nil {
		c.program.Release()
		c.program = nil
	}
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.context != nil {
		c.context.Release()
		c.context = nil
	}
}

func (c *openCLColouriser) DeviceName() string {
	return c.deviceName
}
