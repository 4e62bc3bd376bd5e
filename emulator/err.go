package emulator

import (
	"errors"

	"github.com/ezrec/ucrt/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrProgramMissing = errors.New(f("program missing"))
	ErrNotReset       = errors.New(f("emulator not reset"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
