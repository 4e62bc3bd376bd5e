package depot

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples(t *testing.T) {
	assert := assert.New(t)

	dp := Examples()
	assert.Equal("examples/10.txt", dp.Name(10))

	text, err := dp.Read(10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(146, len(lines))
	assert.Equal("addx 15", lines[0])
	assert.Equal("noop", lines[len(lines)-1])

	file, err := dp.Open(10)
	require.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	assert.NoError(err)
	assert.Equal(text, string(data))
}

func TestMissing(t *testing.T) {
	assert := assert.New(t)

	dp := &Depot{FS: fstest.MapFS{
		"inputs/01.txt": &fstest.MapFile{Data: []byte("noop\n")},
	}, Dir: "inputs"}

	text, err := dp.Read(1)
	assert.NoError(err)
	assert.Equal("noop\n", text)

	_, err = dp.Read(2)
	assert.ErrorIs(err, ErrInputMissing)
	assert.ErrorIs(err, fs.ErrNotExist)

	var input *ErrInput
	if assert.True(errors.As(err, &input)) {
		assert.Equal(2, input.Day)
	}

	_, err = dp.Open(3)
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestInputs(t *testing.T) {
	assert := assert.New(t)

	dp := Inputs(t.TempDir())
	assert.Equal("inputs/10.txt", dp.Name(10))

	_, err := dp.Read(10)
	assert.ErrorIs(err, ErrInputMissing)
}
