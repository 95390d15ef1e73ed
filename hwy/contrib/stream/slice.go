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

package stream

import "github.com/ajroetker/hwyzip/hwy"

// Stream yields the elements of a slice as hwy vectors.
//
// The slice is read, never written. Vectors are copies, so callers may
// modify them freely.
type Stream[T hwy.Lanes] struct {
	data  []T
	pos   int
	lanes int
	def   T
}

// FromSlice returns a Stream over data that pads its tail with zeros.
func FromSlice[T hwy.Lanes](data []T, opts ...Option) *Stream[T] {
	return &Stream[T]{data: data, lanes: resolveLanes[T](opts)}
}

// FromSliceDefault returns a Stream over data that pads its tail with def.
func FromSliceDefault[T hwy.Lanes](data []T, def T, opts ...Option) *Stream[T] {
	return &Stream[T]{data: data, lanes: resolveLanes[T](opts), def: def}
}

func (s *Stream[T]) Width() int     { return s.lanes }
func (s *Stream[T]) Size() int      { return hwy.SizeOf[T]() }
func (s *Stream[T]) ScalarPos() int { return s.pos }
func (s *Stream[T]) ScalarLen() int { return len(s.data) }
func (s *Stream[T]) VectorPos() int { return VectorPos[hwy.Vec[T]](s) }
func (s *Stream[T]) VectorLen() int { return VectorLen[hwy.Vec[T]](s) }
func (s *Stream[T]) Finalize()      { Finalize[hwy.Vec[T]](s) }

// Advance skips amount elements. Advancing past the end stops at the end.
func (s *Stream[T]) Advance(amount int) {
	s.seek(s.pos + amount)
}

// Default returns a vector with every lane set to the padding value.
func (s *Stream[T]) Default() hwy.Vec[T] {
	return hwy.SetN(s.def, s.lanes)
}

func (s *Stream[T]) Next() (hwy.Vec[T], bool) {
	if s.pos+s.lanes > len(s.data) {
		return hwy.Vec[T]{}, false
	}
	return s.nextAt(s.pos), true
}

// End returns up to Width remaining elements. It is meant to be called
// once Next has returned false, in which case the vector is partial.
func (s *Stream[T]) End() (hwy.Vec[T], int, bool) {
	n := min(len(s.data)-s.pos, s.lanes)
	if n <= 0 {
		return hwy.Vec[T]{}, 0, false
	}
	return s.endAt(s.pos, n), n, true
}

func (s *Stream[T]) nextAt(pos int) hwy.Vec[T] {
	v := hwy.LoadN(s.data[pos:pos+s.lanes], s.lanes)
	s.pos = pos + s.lanes
	return v
}

func (s *Stream[T]) endAt(pos, n int) hwy.Vec[T] {
	v := s.Default()
	copy(v.Data(), s.data[pos:pos+n])
	s.pos = pos + n
	return v
}

func (s *Stream[T]) seek(pos int) {
	s.pos = max(0, min(pos, len(s.data)))
}
