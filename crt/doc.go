// Package crt consumes the cycle trace of the μCRT CPU.
//
// Signal samples the x register at chosen cycles and sums the weighted
// signal strength. Render draws the 40x6 raster: the beam sweeps one pixel
// per cycle, and lights the pixel whenever the three pixel wide sprite
// centred on x covers the beam's column.
package crt
