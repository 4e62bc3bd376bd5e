// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/ucrt/cpu"
	"github.com/ezrec/ucrt/crt"
	"github.com/ezrec/ucrt/internal"
)

// Emulator state. CPU state + program + trace.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // Reference to the currently running program listing.
	State   cpu.State    // Current CPU state.

	code  []cpu.Instruction
	trace cpu.Trace
	reset bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		cpu.Defines(),
		crt.Defines(),
	)
}

// Load assembles a program from input, with the emulator defines
// predefined, and resets the emulator to run it.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	err = emu.Reset()
	return
}

// Reset the emulator to the power-on state of the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	emu.code = emu.Program.Instructions()
	emu.State = cpu.Boot(emu.code)
	emu.trace = append(emu.trace[:0], emu.State)
	emu.reset = true

	if emu.Verbose {
		log.Printf("emulator: reset, %d instructions, %d cycles", len(emu.code), emu.Program.Cycles())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.State.Cycle
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	op := emu.Program.Debug(emu.State.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Trace returns a copy of the trace recorded since the last reset.
func (emu *Emulator) Trace() cpu.Trace {
	return slices.Clone(emu.trace)
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if !emu.reset {
		err = ErrNotReset
		return
	}

	if emu.State.Halted {
		done = true
		return
	}

	if emu.Verbose {
		log.Printf("cycle %d: line %d pc %d %v x=%d %v", emu.State.Cycle+1, lineno,
			emu.State.Pc, emu.code[emu.State.Pc], emu.State.Register, emu.State.Phase)
	}

	emu.State = cpu.Step(emu.code, emu.State)
	emu.trace = append(emu.trace, emu.State)

	return
}

// Run resets the emulator, ticks until the program halts, and returns
// the trace.
func (emu *Emulator) Run() (trace cpu.Trace, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return nil, err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d cycles, x=%d", emu.Ticks(), emu.State.Register)
	}

	trace = emu.Trace()
	return
}
