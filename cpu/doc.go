// Package cpu implements the cycle engine and assembler for the μCRT system.
//
// The CPU has a single signed register (x), a program counter, and a
// two-phase instruction latch. Two instructions exist: noop, which
// completes in one cycle, and addx, which takes two cycles and commits its
// addend to the register at the end of the second. The state of the machine
// is a plain value; Step advances it by exactly one clock cycle, and Run
// drains a program into a Trace holding the state at every cycle boundary.
//
// The assembler reads the textual program format (one mnemonic per line),
// supporting comments, equates, and compile-time expression evaluation.
package cpu
