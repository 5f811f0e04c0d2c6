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

package image

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Frame is one compressed or raw frame pulled from a container.
type Frame struct {
	Data      []byte
	Timestamp time.Duration
}

// FrameReader is the pull interface a demuxer implements. ReadFrame returns
// io.EOF once the stream is exhausted. The Data of a returned Frame is only
// valid until the next call.
type FrameReader interface {
	ReadFrame() (Frame, error)
	Close() error
}

// OpenFunc opens a frame stream from a path.
type OpenFunc func(path string) (FrameReader, error)

// RowFeeder cuts the bytes of consecutive frames into fixed-size pixel rows.
// A row may span a frame boundary.
type RowFeeder struct {
	r       FrameReader
	pending []byte
}

// NewRowFeeder returns a feeder that pulls frames from r on demand.
func NewRowFeeder(r FrameReader) *RowFeeder {
	return &RowFeeder{r: r}
}

// ReadRow fills row completely. It returns io.EOF when the stream ended
// before any byte of the row, and io.ErrUnexpectedEOF when it ended midway.
func (f *RowFeeder) ReadRow(row []uint8) error {
	n := 0
	for n < len(row) {
		if len(f.pending) == 0 {
			frame, err := f.r.ReadFrame()
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return io.EOF
				}
				return io.ErrUnexpectedEOF
			}
			if err != nil {
				return err
			}
			f.pending = frame.Data
			continue
		}
		c := copy(row[n:], f.pending)
		f.pending = f.pending[c:]
		n += c
	}
	return nil
}

// FillFromFrames fills img row by row from r. The caller keeps ownership of
// r and closes it.
func FillFromFrames(img *Image[uint8], r FrameReader) error {
	feeder := NewRowFeeder(r)
	for y := 0; y < img.Height(); y++ {
		if err := feeder.ReadRow(img.Row(y)); err != nil {
			return fmt.Errorf("image: filling row %d of %d: %w", y, img.Height(), err)
		}
	}
	return nil
}

// FrameRate is a rational frames-per-second value.
type FrameRate struct {
	Num, Den int
}

// ErrNoFrameRate is returned when a stream holds too few timed frames to
// derive a rate.
var ErrNoFrameRate = errors.New("image: cannot derive frame rate")

const (
	probeDuration = time.Second
	probeFrames   = 50
)

// GuessFrameRate reads up to one second or 50 frames from r and derives the
// rate from the last timestamp seen. It consumes the frames it reads; reopen
// the stream before decoding.
func GuessFrameRate(r FrameReader) (FrameRate, error) {
	var last time.Duration
	frames := 0
	for last < probeDuration && frames < probeFrames {
		frame, err := r.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return FrameRate{}, err
		}
		last = frame.Timestamp
		frames++
	}
	den := int(last / time.Microsecond)
	if frames < 2 || den <= 0 {
		return FrameRate{}, ErrNoFrameRate
	}
	return FrameRate{Num: (frames - 1) * 1000000, Den: den}, nil
}
