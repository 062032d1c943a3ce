//go:build !opencl

package main

import (
	"errors"

	"FallingSand/sand"
)

type openCLColouriser struct{}

func newOpenCLColouriser(width, height int, _ sand.Colour) (*openCLColouriser, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (c *openCLColouriser) Colourise(dst []byte, src []sand.Colour) error {
	return errors.New("OpenCL support is not enabled")
}

func (c *openCLColouriser) Close() {}

func (c *openCLColouriser) DeviceName() string { return "" }
