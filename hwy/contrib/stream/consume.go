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

import (
	"iter"

	"github.com/ajroetker/hwyzip/hwy"
)

// ForEach calls fn on every full vector of it, then once more on the
// padded tail if there is one. Padding lanes are passed through unmasked.
func ForEach[V any](it Iterator[V], fn func(V)) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v)
	}
	if v, _, ok := it.End(); ok {
		fn(v)
	}
}

// ForEachN is ForEach with the number of valid lanes: Width for full
// vectors and the tail count for the last one.
func ForEachN[V any](it Iterator[V], fn func(v V, n int)) {
	w := it.Width()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v, w)
	}
	if v, n, ok := it.End(); ok {
		fn(v, n)
	}
}

// Reduce folds fn over the vectors of it starting from start, including
// the padded tail.
//
// The padded lanes of the tail fold in Default values, so the result
// depends on the vector width. With data = 100 elements of 2.0, a zero
// default and acc+v, 4-lane vectors give
//
//	[ 50 | 50 | 50 | 50 ]
//
// while 8-lane vectors give
//
//	[ 26 | 26 | 26 | 26 | 24 | 24 | 24 | 24 ]
//
// Interpret the result in a width-independent way, e.g. with
// hwy.ReduceSum, which yields 200 in both cases.
func Reduce[V, A any](it Iterator[V], start A, fn func(A, V) A) A {
	acc := start
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v)
	}
	if v, _, ok := it.End(); ok {
		acc = fn(acc, v)
	}
	return acc
}

// TryForEach is ForEach with a fallible callback. It stops at the first
// error and returns it unchanged; the stream is left after the vector that
// failed.
func TryForEach[V any](it Iterator[V], fn func(V) error) error {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if err := fn(v); err != nil {
			return err
		}
	}
	if v, _, ok := it.End(); ok {
		return fn(v)
	}
	return nil
}

// TryReduce is Reduce with a fallible callback. On error it returns the
// accumulator built so far together with the unchanged error.
func TryReduce[V, A any](it Iterator[V], start A, fn func(A, V) (A, error)) (A, error) {
	acc := start
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		next, err := fn(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	if v, _, ok := it.End(); ok {
		next, err := fn(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// Fill stores the vectors of it into dst, starting at dst[0]. Only the
// valid lanes of the tail are written. It returns the number of elements
// written, which is less than the remaining length of it only when dst is
// too short.
func Fill[T hwy.Lanes](it Iterator[hwy.Vec[T]], dst []T) int {
	written := 0
	ForEachN(it, func(v hwy.Vec[T], n int) {
		n = min(n, len(dst)-written)
		if n <= 0 {
			return
		}
		hwy.Store(v, dst[written:written+n])
		written += n
	})
	return written
}

// All returns an iterator over the vectors of it and their valid-lane
// counts, ending with the tail. Breaking out of the loop leaves it
// positioned after the last vector yielded.
func All[V any](it Iterator[V]) iter.Seq2[V, int] {
	return func(yield func(V, int) bool) {
		w := it.Width()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v, w) {
				return
			}
		}
		if v, n, ok := it.End(); ok {
			yield(v, n)
		}
	}
}
