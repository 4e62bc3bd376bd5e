package crt

import (
	"github.com/ezrec/ucrt/translate"
)

var f = translate.From

// ErrIndexOutOfRange is returned when a sampled cycle is not in the trace.
type ErrIndexOutOfRange struct {
	Cycle  int // Requested 1-based cycle.
	Length int // Length of the trace.
}

func (err ErrIndexOutOfRange) Error() string {
	return f("cycle %d out of range of trace length %d", err.Cycle, err.Length)
}

func (err ErrIndexOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrIndexOutOfRange)
	return
}

// ErrTraceShort is the panic value when a trace is too short to fill the raster.
type ErrTraceShort int

func (err ErrTraceShort) Error() string {
	return f("trace length %d shorter than %d pixels", int(err), CRT_PIXELS)
}
