// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package crt

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/ucrt/cpu"
)

const (
	CRT_WIDTH  = 40                     // Pixels per row.
	CRT_HEIGHT = 6                      // Rows per frame.
	CRT_PIXELS = CRT_WIDTH * CRT_HEIGHT // Pixels (and cycles) per frame.

	GLYPH_LIT  = '#'
	GLYPH_DARK = '.'
)

// SIGNAL_CYCLES are the cycles sampled for the signal strength.
var SIGNAL_CYCLES = []int{20, 60, 100, 140, 180, 220}

var _crt_defines = map[string]string{
	"CRT_WIDTH":  fmt.Sprintf("%v", CRT_WIDTH),
	"CRT_HEIGHT": fmt.Sprintf("%v", CRT_HEIGHT),
	"CRT_PIXELS": fmt.Sprintf("%v", CRT_PIXELS),
}

// Defines for the crt
func Defines() iter.Seq2[string, string] {
	return maps.All(_crt_defines)
}

// Signal returns the sum of cycle times x for each sampled 1-based cycle.
// No partial sum is returned if any cycle is outside the trace.
func Signal(trace cpu.Trace, cycles ...int) (sum int64, err error) {
	for _, cycle := range cycles {
		st, ok := trace.During(cycle)
		if !ok {
			sum = 0
			err = ErrIndexOutOfRange{Cycle: cycle, Length: len(trace)}
			return
		}
		sum += int64(cycle) * st.Register
	}

	return
}

// Lit returns true if the sprite centred on x covers the column.
func Lit(x int64, col int) bool {
	return int64(col) >= x-1 && int64(col) <= x+1
}

// Render draws the first frame of the trace, one row per line.
// A trace shorter than CRT_PIXELS is a programming error, and panics
// with ErrTraceShort.
func Render(trace cpu.Trace) string {
	if len(trace) < CRT_PIXELS {
		panic(ErrTraceShort(len(trace)))
	}

	var sb strings.Builder
	sb.Grow(CRT_PIXELS + CRT_HEIGHT - 1)

	for row := range CRT_HEIGHT {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range CRT_WIDTH {
			glyph := byte(GLYPH_DARK)
			if Lit(trace[row*CRT_WIDTH+col].Register, col) {
				glyph = GLYPH_LIT
			}
			sb.WriteByte(glyph)
		}
	}

	return sb.String()
}
