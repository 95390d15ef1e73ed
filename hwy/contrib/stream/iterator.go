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

// Iterator is a sized, positioned stream of vectors of type V.
//
// Positions and lengths are counted in scalars (elements), not vectors.
type Iterator[V any] interface {
	// Width returns the number of lanes per vector.
	Width() int

	// Size returns the size in bytes of one scalar element.
	Size() int

	// ScalarPos returns the number of elements consumed so far.
	ScalarPos() int

	// ScalarLen returns the total number of elements.
	ScalarLen() int

	// Advance skips amount elements without producing them.
	Advance(amount int)

	// Default returns the vector used to pad the tail.
	Default() V

	// Next returns the next full vector, or false when fewer than Width
	// elements remain.
	Next() (V, bool)

	// End returns the remaining elements as one vector padded with
	// Default, and the number of valid lanes. It returns false when no
	// elements remain.
	End() (V, int, bool)
}

// Zippable is an Iterator that can be a member of a Zip.
//
// The unexported methods read at a position supplied by the zip leader
// instead of the stream's own position. They are only called while every
// member of the zip is at that position with the same length, so only
// types in this package can implement Zippable.
type Zippable[V any] interface {
	Iterator[V]

	// nextAt returns the full vector starting at pos and leaves the stream
	// positioned after it.
	nextAt(pos int) V

	// endAt returns the n elements starting at pos padded with Default and
	// leaves the stream positioned after them.
	endAt(pos, n int) V

	// seek moves the stream to pos.
	seek(pos int)
}

// VectorPos returns the position of it in whole vectors.
func VectorPos[V any](it Iterator[V]) int {
	return it.ScalarPos() / it.Width()
}

// VectorLen returns the length of it in whole vectors. A partial tail is
// not counted.
func VectorLen[V any](it Iterator[V]) int {
	return it.ScalarLen() / it.Width()
}

// Finalize advances it past its last element without producing anything.
func Finalize[V any](it Iterator[V]) {
	it.Advance(it.ScalarLen() - it.ScalarPos())
}
