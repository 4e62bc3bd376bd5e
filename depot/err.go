package depot

import (
	"errors"

	"github.com/ezrec/ucrt/translate"
)

var f = translate.From

var (
	// Depot errors
	ErrInputMissing = errors.New(f("input missing"))
)

// ErrInput indicates the puzzle whose input could not be provided.
type ErrInput struct {
	Day int
	Err error
}

func (err *ErrInput) Error() string {
	return f("day %d: %v", err.Day, err.Err)
}

func (err *ErrInput) Unwrap() []error {
	return []error{ErrInputMissing, err.Err}
}
