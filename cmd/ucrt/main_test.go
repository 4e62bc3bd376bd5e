package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/ucrt/cpu"
	"github.com/ezrec/ucrt/crt"
	"github.com/ezrec/ucrt/depot"
)

const frame = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....`

func execute(t *testing.T, args ...string) (output string, err error) {
	var buf bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	output = buf.String()
	return
}

func TestSolve(t *testing.T) {
	assert := assert.New(t)

	output, err := execute(t, "--example")
	require.NoError(t, err)

	assert.Contains(output, "part 1")
	assert.Contains(output, "\n13140\n")
	assert.Contains(output, "part 2")
	assert.Contains(output, frame+"\n")
}

func TestSignal(t *testing.T) {
	assert := assert.New(t)

	output, err := execute(t, "--example", "signal", "--cycles", "20,60")
	require.NoError(t, err)
	assert.Contains(output, "\n1560\n")

	_, err = execute(t, "--example", "signal", "--cycles", "242")
	assert.ErrorIs(err, crt.ErrIndexOutOfRange{})
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("noop\naddx 1\n"), 0o644))

	_, err := execute(t, "--input", path, "render")
	assert.ErrorIs(err, crt.ErrTraceShort(4))

	output, err := execute(t, "--example", "render")
	require.NoError(t, err)
	assert.True(strings.HasSuffix(output, frame+"\n"))
}

func TestTrace(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte("addx 3\nnoop\naddx -5\n"), 0o644))

	output, err := execute(t, "--input", path, "trace")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(6, len(lines))
	assert.Equal("cycle 0: pc 0 x=1 fetch", lines[0])
	assert.Equal("cycle 5: pc 3 x=-1 fetch halted", lines[5])

	output, err = execute(t, "--input", path, "trace", "--format", "yaml")
	require.NoError(t, err)

	var dumped []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(output), &dumped))
	assert.Equal(6, len(dumped))
	assert.Equal("commit", dumped[1]["phase"])
	assert.Equal(4, dumped[2]["x"])
	assert.Equal(true, dumped[5]["halted"])

	_, err = execute(t, "--input", path, "trace", "--format", "json")
	assert.ErrorIs(err, ErrFormat("json"))
}

func TestDepot(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "inputs"), 0o755))

	text, err := depot.Examples().Read(DAY)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inputs", "10.txt"), []byte(text), 0o644))

	output, err := execute(t, "--root", dir, "signal")
	require.NoError(t, err)
	assert.Contains(output, "\n13140\n")

	_, err = execute(t, "--root", dir, "--day", "11")
	assert.ErrorIs(err, depot.ErrInputMissing)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := dump(&buf, cpu.Run(nil), "text")
	assert.NoError(err)
	assert.Equal("cycle 0: pc 0 x=1 fetch halted\n", buf.String())
}
