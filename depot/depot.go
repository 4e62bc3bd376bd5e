// Package depot provides the program text of each puzzle, either from the
// worked examples built into the binary, or from an inputs directory on disk.
package depot

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

//go:embed examples
var examples embed.FS

// Depot is a directory of puzzle inputs, named by two digit puzzle number.
type Depot struct {
	FS  fs.FS  // File system holding the inputs.
	Dir string // Directory of the inputs in FS.
}

// Examples returns the depot of built-in worked examples.
func Examples() *Depot {
	return &Depot{FS: examples, Dir: "examples"}
}

// Inputs returns the depot of the inputs directory under root.
func Inputs(root string) *Depot {
	return &Depot{FS: os.DirFS(root), Dir: "inputs"}
}

// Name returns the path of the day's input in the depot.
func (dp *Depot) Name(day int) string {
	return path.Join(dp.Dir, fmt.Sprintf("%02d.txt", day))
}

// Open opens the input for a day.
func (dp *Depot) Open(day int) (file io.ReadCloser, err error) {
	file, err = dp.FS.Open(dp.Name(day))
	if err != nil {
		err = &ErrInput{Day: day, Err: err}
		return
	}

	return
}

// Read returns the input text for a day.
func (dp *Depot) Read(day int) (text string, err error) {
	data, err := fs.ReadFile(dp.FS, dp.Name(day))
	if err != nil {
		err = &ErrInput{Day: day, Err: err}
		return
	}

	text = string(data)
	return
}
