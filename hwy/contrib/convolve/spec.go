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

package convolve

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	// FilterBits is the fixed-point precision of the taps.
	FilterBits = 7

	// MaxTaps is the widest supported filter.
	MaxTaps = 12

	// windowLanes is the number of byte lanes in one packed window.
	windowLanes = 16

	// Margin is the number of readable samples callers must keep on both
	// sides of a source row block.
	Margin = 16
)

var (
	// ErrTapCount is returned for filters that are not 10 or 12 taps long.
	ErrTapCount = errors.New("convolve: filter must have 10 or 12 taps")

	// ErrGain is returned when the taps do not sum to 1<<FilterBits.
	ErrGain = errors.New("convolve: taps must sum to 128")

	// ErrCoefficientRange is returned when a tap does not fit in a signed byte.
	ErrCoefficientRange = errors.New("convolve: tap out of signed byte range")
)

// Taps holds the coefficients of a filter, in source order.
type Taps []int16

// Validate checks the tap count, the unity gain and the coefficient range.
func (t Taps) Validate() error {
	if len(t) != 10 && len(t) != 12 {
		return fmt.Errorf("%w: got %d", ErrTapCount, len(t))
	}
	sum := 0
	for i, c := range t {
		if c < math.MinInt8 || c > math.MaxInt8 {
			return fmt.Errorf("%w: tap %d is %d", ErrCoefficientRange, i, c)
		}
		sum += int(c)
	}
	if sum != 1<<FilterBits {
		return fmt.Errorf("%w: got %d", ErrGain, sum)
	}
	return nil
}

// Spec is an immutable filter description: the taps plus the two packed
// byte windows the vector kernel multiplies against.
//
// Window 0 holds the taps starting at lane Lead(), window 1 the same taps
// two lanes further. The 10-tap filter is centred by reading the source one
// sample early (Lead() == 1) rather than by changing its coefficients.
type Spec struct {
	name    string
	taps    Taps
	windows [2][windowLanes]int8
	lead    int
}

// NewSpec validates taps and packs them.
func NewSpec(name string, taps Taps) (*Spec, error) {
	if err := taps.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s := &Spec{
		name: name,
		taps: slices.Clone(taps),
		lead: (MaxTaps - len(taps)) / 2,
	}
	for k, c := range taps {
		s.windows[0][s.lead+k] = int8(c)
		s.windows[1][s.lead+2+k] = int8(c)
	}
	return s, nil
}

func mustSpec(name string, taps Taps) *Spec {
	s, err := NewSpec(name, taps)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	// Spec12 is the 12-tap sub-pixel filter.
	Spec12 = mustSpec("12-tap", Taps{-1, 3, -4, 8, -18, 120, 28, -12, 7, -4, 2, -1})

	// Spec10 is the 10-tap sub-pixel filter.
	Spec10 = mustSpec("10-tap", Taps{1, -3, 7, -17, 119, 28, -11, 5, -2, 1})
)

// Specs returns the built-in filters in the order the harness runs them.
func Specs() []*Spec {
	return []*Spec{Spec12, Spec10}
}

// SpecByTaps returns the built-in filter with n taps.
func SpecByTaps(n int) (*Spec, error) {
	for _, s := range Specs() {
		if s.TapsNum() == n {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: got %d", ErrTapCount, n)
}

// Name returns the filter's label.
func (s *Spec) Name() string { return s.name }

// Taps returns a copy of the coefficients.
func (s *Spec) Taps() Taps { return slices.Clone(s.taps) }

// TapsNum returns the number of taps.
func (s *Spec) TapsNum() int { return len(s.taps) }

// SignalSpan returns how many outputs one 16-byte load covers with a single
// window: 16 - TapsNum() + 1.
func (s *Spec) SignalSpan() int { return windowLanes - len(s.taps) + 1 }

// Lead returns how many samples before pos the vector kernel starts reading.
func (s *Spec) Lead() int { return s.lead }

// Windows returns a copy of the packed windows.
func (s *Spec) Windows() [2][windowLanes]int8 { return s.windows }

func (s *Spec) String() string { return s.name }
