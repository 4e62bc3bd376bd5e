package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/ucrt/cpu"
	"github.com/ezrec/ucrt/crt"
	"github.com/ezrec/ucrt/depot"
	"github.com/ezrec/ucrt/emulator"
	"github.com/ezrec/ucrt/translate"
)

const DAY = 10 // Puzzle number of the μCRT program.

// options are the flags shared by every command.
type options struct {
	Input   string // Program file, '-' for stdin.
	Day     int    // Puzzle number to read from the depot.
	Example bool   // Read the built-in worked example.
	Root    string // Directory holding the inputs/ depot.
	Verbose bool   // Log every cycle.
}

// open opens the program text selected by the options.
func (opts *options) open() (in io.ReadCloser, err error) {
	switch {
	case opts.Input == "-":
		in = io.NopCloser(os.Stdin)
	case len(opts.Input) != 0:
		in, err = os.Open(opts.Input)
	case opts.Example:
		in, err = depot.Examples().Open(opts.Day)
	default:
		in, err = depot.Inputs(opts.Root).Open(opts.Day)
	}

	return
}

// trace loads the program, and runs it to a halt.
func (opts *options) trace() (trace cpu.Trace, err error) {
	in, err := opts.open()
	if err != nil {
		return
	}
	defer in.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose

	err = emu.Load(in)
	if err != nil {
		return
	}

	trace, err = emu.Run()
	return
}

// signal is the part one answer.
func signal(trace cpu.Trace, cycles []int) (answer string, err error) {
	sum, err := crt.Signal(trace, cycles...)
	if err != nil {
		return
	}

	answer = fmt.Sprintf("%d", sum)
	return
}

// render is the part two answer.
func render(trace cpu.Trace) (answer string, err error) {
	if len(trace) < crt.CRT_PIXELS {
		err = crt.ErrTraceShort(len(trace))
		return
	}

	answer = crt.Render(trace)
	return
}

// solve times a part, and reports its answer.
func solve(w io.Writer, part int, fn func() (string, error)) (err error) {
	start := time.Now()
	answer, err := fn()
	if err != nil {
		return
	}
	elapsed := time.Since(start)

	translate.Fprintf(w, "part %d (elapsed %v)\n", part, elapsed)
	_, err = fmt.Fprintln(w, answer)
	return
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var cycles []int
	var format string

	rootCmd := &cobra.Command{
		Use:   "ucrt",
		Short: "Run a μCRT program, and report its signal strength and raster",
		Long: `ucrt runs a noop/addx program on the cycle accurate μCRT CPU.
With no command, both the signal strength and the rendered raster are reported.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			trace, err := opts.trace()
			if err != nil {
				return
			}

			err = solve(cmd.OutOrStdout(), 1, func() (string, error) { return signal(trace, crt.SIGNAL_CYCLES) })
			if err != nil {
				return
			}

			err = solve(cmd.OutOrStdout(), 2, func() (string, error) { return render(trace) })
			return
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.Input, "input", "i", "", "program file to run, '-' for stdin")
	flags.IntVar(&opts.Day, "day", DAY, "puzzle number to read from the inputs depot")
	flags.BoolVar(&opts.Example, "example", false, "run the built-in worked example")
	flags.StringVar(&opts.Root, "root", ".", "directory holding the inputs depot")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every cycle")

	signalCmd := &cobra.Command{
		Use:   "signal",
		Short: "Report the signal strength summed over the sampled cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			trace, err := opts.trace()
			if err != nil {
				return
			}

			return solve(cmd.OutOrStdout(), 1, func() (string, error) { return signal(trace, cycles) })
		},
	}
	signalCmd.Flags().IntSliceVar(&cycles, "cycles", crt.SIGNAL_CYCLES, "1-based cycles to sample")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the CRT raster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			trace, err := opts.trace()
			if err != nil {
				return
			}

			return solve(cmd.OutOrStdout(), 2, func() (string, error) { return render(trace) })
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Dump the machine state at every cycle boundary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			trace, err := opts.trace()
			if err != nil {
				return
			}

			return dump(cmd.OutOrStdout(), trace, format)
		},
	}
	traceCmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")

	rootCmd.AddCommand(signalCmd, renderCmd, traceCmd)

	return rootCmd
}

// dump writes the trace in the requested format.
func dump(w io.Writer, trace cpu.Trace, format string) (err error) {
	switch format {
	case "text":
		for _, st := range trace {
			_, err = fmt.Fprintln(w, st.String())
			if err != nil {
				return
			}
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(trace)
		if err != nil {
			return
		}
		err = enc.Close()
	default:
		err = ErrFormat(format)
	}

	return
}

// ErrFormat is an unknown trace dump format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return translate.From("unknown format '%v'", string(err))
}
