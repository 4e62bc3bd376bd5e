package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo      int
	Words       []string
	Instruction Instruction
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at the program counter, or nil if there is none.
func (prog *Program) Debug(pc int) (op *Opcode) {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return
	}

	return &prog.Opcodes[pc]
}

// Code returns an iterator over the program counter and instruction of
// every opcode.
func (prog *Program) Code() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for pc, op := range prog.Opcodes {
			if !yield(pc, op.Instruction) {
				return
			}
		}
	}
}

// Instructions returns the instruction sequence executed by the engine.
func (prog *Program) Instructions() (code []Instruction) {
	code = make([]Instruction, 0, len(prog.Opcodes))
	for _, ins := range prog.Code() {
		code = append(code, ins)
	}

	return
}

// Cycles returns the total cycles needed to run the program to a halt.
func (prog *Program) Cycles() (cycles int) {
	for _, ins := range prog.Code() {
		cycles += ins.Cycles()
	}

	return
}
