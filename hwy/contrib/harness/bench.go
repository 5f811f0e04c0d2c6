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
	"time"

	"github.com/ajroetker/go-subpel/hwy/contrib/convolve"
	"github.com/ajroetker/go-subpel/hwy/contrib/image"
)

// Clock is a monotonic high-resolution counter. Only differences between two
// readings are meaningful.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

// Now implements Clock.
func (f ClockFunc) Now() int64 { return f() }

// MonotonicClock reads the runtime monotonic clock in nanoseconds.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a clock whose readings count from now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now implements Clock.
func (c *MonotonicClock) Now() int64 {
	return int64(time.Since(c.origin))
}

// Sample is one timed pass of a filter over a block.
type Sample struct {
	Filter string
	Ticks  int64
}

// Measure filters every row of src into dst and returns the clock delta
// around the whole loop. It takes a single reading on each side: no warm-up,
// no repetition. The measurement assumes nothing else runs on the thread.
func Measure(clock Clock, f convolve.RowFilter, src, dst *image.Image[uint8]) Sample {
	width := src.Width()
	buf := src.Buffer()

	start := clock.Now()
	for y := 0; y < src.Height(); y++ {
		f.FilterRow(dst.Row(y), buf, src.Offset(y), width)
	}
	end := clock.Now()

	return Sample{Filter: f.Name(), Ticks: end - start}
}
