// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command subpel checks that the vector sub-pixel filter is bit-exact with the
// scalar reference and times both.
//
// Usage:
//
//	subpel <seed> <width> [--height 8] [--taps 12,10] [--kernel auto|lanes|ssse3] [--verbose]
//
// width is one of 4, 8, 16, 32, 64. Any other width aborts in the vector
// filter. Set HWY_NO_SIMD=1 to force the portable kernel.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-subpel/hwy/contrib/convolve"
	"github.com/ajroetker/go-subpel/hwy/contrib/harness"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// exitFailure is the status for usage and configuration errors.
const exitFailure = -1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return 0
}

type options struct {
	height  int
	taps    []int
	kernel  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "subpel <seed> <width>",
		Short: "Verify and time the horizontal sub-pixel filter",
		Long: "subpel fills a block with seeded pseudo-random pixels, filters it with the\n" +
			"scalar reference and the vector filter, reports both timings and the first\n" +
			"mismatching pixel, if any.\n\n" +
			"width = " + widthList() + ". seed = random seed number.",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarness(cmd.OutOrStdout(), stderr, args, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVar(&opts.height, "height", harness.DefaultHeight, "rows per block")
	flags.IntSliceVar(&opts.taps, "taps", []int{12, 10}, "filters to run, by tap count, in order")
	flags.StringVar(&opts.kernel, "kernel", harness.KernelAuto, "vector kernel: auto, lanes or ssse3")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log kernel selection and timings to stderr")
	return cmd
}

func runHarness(stdout, stderr io.Writer, args []string, opts *options) error {
	seed, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", args[0], err)
	}
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[1], err)
	}
	specs, err := parseSpecs(opts.taps)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	harness.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer harness.SetLogger(nil)

	_, err = harness.Run(stdout, harness.Config{
		Seed:   uint32(seed),
		Width:  width,
		Height: opts.height,
		Specs:  specs,
		Kernel: opts.kernel,
	})
	return err
}

// parseSpecs maps tap counts to the built-in filters, dropping repeats.
func parseSpecs(taps []int) ([]*convolve.Spec, error) {
	specs := make([]*convolve.Spec, 0, len(taps))
	for _, n := range lo.Uniq(taps) {
		s, err := convolve.SpecByTaps(n)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func widthList() string {
	return strings.Join(lo.Map(convolve.SupportedWidths(), func(w, _ int) string {
		return strconv.Itoa(w)
	}), ", ")
}
