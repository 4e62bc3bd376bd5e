// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Op is an instruction operation type.
type Op int

//go:generate go tool stringer -linecomment -type=Op,Phase
const (
	OP_NOOP = Op(0) // noop
	OP_ADDX = Op(1) // addx
)

// Phase is the execution latch of the in-flight instruction.
type Phase int

const (
	PHASE_FETCH  = Phase(0) // fetch
	PHASE_COMMIT = Phase(1) // commit
)

// MarshalYAML emits the phase by name.
func (ph Phase) MarshalYAML() (any, error) {
	return ph.String(), nil
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op     Op    // Operation.
	Addend int64 // Value added to x when an addx commits.
}

// MakeNoop returns a noop instruction.
func MakeNoop() Instruction {
	return Instruction{Op: OP_NOOP}
}

// MakeAddx returns an addx instruction for the given addend.
func MakeAddx(addend int64) Instruction {
	return Instruction{Op: OP_ADDX, Addend: addend}
}

// Cycles returns the number of clock cycles the instruction occupies.
func (ins Instruction) Cycles() (cycles int) {
	switch ins.Op {
	case OP_NOOP:
		cycles = 1
	case OP_ADDX:
		cycles = 2
	default:
		panic(ErrOpcode(ins.Op))
	}

	return
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	if ins.Op == OP_ADDX {
		return fmt.Sprintf("%v %d", ins.Op, ins.Addend)
	}

	return ins.Op.String()
}
