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

package harness

import (
	"errors"
	"fmt"
	"io"

	"github.com/ajroetker/go-subpel/hwy"
	"github.com/ajroetker/go-subpel/hwy/contrib/convolve"
	"github.com/ajroetker/go-subpel/hwy/contrib/image"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultHeight is the number of rows filtered per pass.
const DefaultHeight = 8

// KernelAuto selects convolve.BestKernel.
const KernelAuto = "auto"

// Config describes one harness run.
type Config struct {
	// Seed seeds both source blocks.
	Seed uint32

	// Width is the block width. It is not validated here: a width the vector
	// filter does not support aborts the run with a panic.
	Width int

	// Height is the number of rows; zero means DefaultHeight.
	Height int

	// Specs are run in order; empty means convolve.Specs().
	Specs []*convolve.Spec

	// Kernel is "auto", "lanes" or "ssse3"; empty means "auto".
	Kernel string

	// Clock times each pass; nil means a MonotonicClock.
	Clock Clock
}

// Validate fills defaults and checks the fields that can be checked
// without running a filter.
func (c *Config) Validate() error {
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Height < 0 {
		return fmt.Errorf("harness: height must be positive, got %d", c.Height)
	}
	if len(c.Specs) == 0 {
		c.Specs = convolve.Specs()
	}
	if c.Kernel == "" {
		c.Kernel = KernelAuto
	}
	if _, err := c.kernel(); err != nil {
		return err
	}
	if c.Clock == nil {
		c.Clock = NewMonotonicClock()
	}
	return nil
}

func (c *Config) kernel() (convolve.Kernel, error) {
	if c.Kernel == KernelAuto {
		return convolve.BestKernel(), nil
	}
	k, err := convolve.ParseKernel(c.Kernel)
	if err != nil {
		return 0, err
	}
	if !k.Available() {
		return 0, fmt.Errorf("%w: %s on %s", convolve.ErrKernelUnavailable, k, hwy.CurrentName())
	}
	return k, nil
}

// Pass is the outcome of one filter spec.
type Pass struct {
	Spec     string
	Scalar   Sample
	Vector   Sample
	Mismatch *Mismatch
}

// Report collects every pass of a run.
type Report struct {
	Kernel convolve.Kernel
	Passes []Pass
}

// OK reports whether every pass was bit-exact.
func (r Report) OK() bool {
	for _, p := range r.Passes {
		if p.Mismatch != nil {
			return false
		}
	}
	return true
}

// ErrBadConfig wraps configuration errors returned by Run.
var ErrBadConfig = errors.New("harness: bad configuration")

// Run builds two identical random blocks from cfg.Seed, filters them with the
// scalar and the vector filter for every spec, prints both timings and the
// first mismatch (if any) to w, and returns the collected report. Mismatches
// do not stop the run.
func Run(w io.Writer, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	k, _ := cfg.kernel()
	log := Logger()
	log.Info("harness run", "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height,
		"specs", len(cfg.Specs))
	log.Debug("kernel selected", "kernel", k, "dispatch", hwy.CurrentName())

	scalarSrc := image.NewRandomImage(cfg.Seed, cfg.Width, cfg.Height, convolve.Margin)
	vectorSrc := image.NewRandomImage(cfg.Seed, cfg.Width, cfg.Height, convolve.Margin)

	p := message.NewPrinter(language.English)
	report := Report{Kernel: k}
	for _, spec := range cfg.Specs {
		vec, err := convolve.NewVector(spec, k)
		if err != nil {
			return report, err
		}

		want := image.NewImage[uint8](cfg.Width, cfg.Height)
		got := image.NewImage[uint8](cfg.Width, cfg.Height)

		pass := Pass{Spec: spec.Name()}
		pass.Scalar = Measure(cfg.Clock, convolve.NewScalar(spec), scalarSrc, want)
		printSample(p, w, pass.Scalar)

		if err := convolve.CheckWidth(cfg.Width); err != nil {
			panic(err)
		}
		pass.Vector = Measure(cfg.Clock, vec, vectorSrc, got)
		printSample(p, w, pass.Vector)

		pass.Mismatch = Compare(want, got)
		if pass.Mismatch != nil {
			fmt.Fprintln(w, pass.Mismatch)
			log.Warn("not bit-exact", "spec", spec.Name(), "row", pass.Mismatch.Row,
				"col", pass.Mismatch.Col)
		}
		log.Debug("pass done", "spec", spec.Name(), "scalar_ns", pass.Scalar.Ticks,
			"vector_ns", pass.Vector.Ticks)
		report.Passes = append(report.Passes, pass)
	}
	log.Info("harness done", "ok", report.OK())
	return report, nil
}

func printSample(p *message.Printer, w io.Writer, s Sample) {
	p.Fprintf(w, "%s version time:\t%d ns\n", s.Filter, s.Ticks)
}
