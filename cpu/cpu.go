// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"maps"
)

const (
	REGISTER_INIT = 1 // Value of x at power-on.
)

var _cpu_defines = map[string]string{
	"REGISTER_INIT": fmt.Sprintf("%v", REGISTER_INIT),
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// State is the machine state at a cycle boundary.
//
// Register is the value x holds during the cycle following Cycle; an addx
// is only visible once the cycle that commits it has completed.
type State struct {
	Cycle    int   `yaml:"cycle"`  // Cycles completed.
	Pc       int   `yaml:"pc"`     // Index of the executing instruction.
	Phase    Phase `yaml:"phase"`  // Latch of the executing instruction.
	Register int64 `yaml:"x"`      // The x register.
	Halted   bool  `yaml:"halted"` // Set once Pc has run off the program.
}

// Pending returns the number of cycles the in-flight instruction still
// needs before it completes, or 0 if the next cycle fetches a fresh one.
func (st State) Pending() int {
	if st.Phase == PHASE_COMMIT {
		return 1
	}

	return 0
}

// String returns the state as a single line.
func (st State) String() string {
	text := fmt.Sprintf("cycle %d: pc %d x=%d %v", st.Cycle, st.Pc, st.Register, st.Phase)
	if st.Halted {
		text += " halted"
	}

	return text
}

// Boot returns the power-on state for the program.
func Boot(code []Instruction) State {
	return State{
		Register: REGISTER_INIT,
		Halted:   len(code) == 0,
	}
}

// Step advances the state by a single clock cycle of the program.
// Stepping a halted state is a programming error, and panics with ErrHalted.
func Step(code []Instruction, st State) (next State) {
	if st.Halted {
		panic(ErrHalted)
	}

	next = st

	ins := code[st.Pc]
	switch ins.Op {
	case OP_NOOP:
		next.Pc++
	case OP_ADDX:
		switch st.Phase {
		case PHASE_FETCH:
			// Hold the addend until the second cycle.
			next.Phase = PHASE_COMMIT
		case PHASE_COMMIT:
			next.Register += ins.Addend
			next.Pc++
			next.Phase = PHASE_FETCH
		}
	default:
		panic(ErrOpcode(ins.Op))
	}

	next.Cycle++
	next.Halted = next.Pc >= len(code)

	return
}

// Trace is the machine state at every cycle boundary of a run, starting
// with the power-on state and ending with the first halted state.
type Trace []State

// Run drains the program, and returns its Trace.
func Run(code []Instruction) (trace Trace) {
	cycles := 0
	for _, ins := range code {
		cycles += ins.Cycles()
	}

	trace = make(Trace, 0, cycles+1)

	st := Boot(code)
	trace = append(trace, st)
	for !st.Halted {
		st = Step(code, st)
		trace = append(trace, st)
	}

	return
}

// Cycles returns the number of cycles executed by the run.
func (trace Trace) Cycles() int {
	return len(trace) - 1
}

// During returns the state in effect while the 1-based cycle executes.
func (trace Trace) During(cycle int) (st State, ok bool) {
	if cycle < 1 || cycle > len(trace) {
		return
	}

	return trace[cycle-1], true
}

// Registers returns an iterator over the x register, keyed by the 1-based
// cycle it is in effect during.
func (trace Trace) Registers() iter.Seq2[int, int64] {
	return func(yield func(cycle int, x int64) bool) {
		for n, st := range trace {
			if !yield(n+1, st.Register) {
				return
			}
		}
	}
}
