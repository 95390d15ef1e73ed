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

var _ Zippable[hwy.Vec[float32]] = (*Stream[float32])(nil)
var _ Zippable[hwy.Vec[float32]] = (*ZipMap[hwy.Vec[float32], float32])(nil)
var _ Zippable[Tuple2[hwy.Vec[int32], hwy.Vec[int32]]] = (*Zip2[hwy.Vec[int32], hwy.Vec[int32]])(nil)

// ZipMap applies a function to every vector of a zippable stream.
//
// It is lazy: nothing is computed until Next or End is called. Positions
// and lengths count output lanes. When fn changes the element size they are
// the wrapped stream's scaled by the byte ratio, so a ZipMap steps by its
// own Width and can lead or follow in a zip like any other member.
type ZipMap[In any, T hwy.Lanes] struct {
	inner Zippable[In]
	fn    func(In) hwy.Vec[T]
}

// Map returns a stream of fn applied to each vector of inner, including
// the padded tail. Map takes ownership of inner.
func Map[In any, T hwy.Lanes](inner Zippable[In], fn func(In) hwy.Vec[T]) *ZipMap[In, T] {
	return &ZipMap[In, T]{inner: inner, fn: fn}
}

// Size returns the byte size of T, which can differ from the wrapped
// stream's element size when fn changes the lane type.
func (m *ZipMap[In, T]) Size() int { return hwy.SizeOf[T]() }

// Width returns the lane count of the output vectors, assuming fn keeps
// the vector byte width of the wrapped stream.
func (m *ZipMap[In, T]) Width() int {
	return max(1, m.inner.Width()*m.inner.Size()/m.Size())
}

func (m *ZipMap[In, T]) ScalarPos() int     { return m.toOut(m.inner.ScalarPos()) }
func (m *ZipMap[In, T]) ScalarLen() int     { return m.toOut(m.inner.ScalarLen()) }
func (m *ZipMap[In, T]) Advance(amount int) { m.inner.Advance(m.toIn(amount)) }
func (m *ZipMap[In, T]) VectorPos() int     { return VectorPos[hwy.Vec[T]](m) }
func (m *ZipMap[In, T]) VectorLen() int     { return VectorLen[hwy.Vec[T]](m) }
func (m *ZipMap[In, T]) Finalize()          { Finalize[hwy.Vec[T]](m) }

// Default returns a zero vector. Calling fn to build a default could have
// side effects, so the neutral value of the output type is used instead.
func (m *ZipMap[In, T]) Default() hwy.Vec[T] {
	return hwy.ZeroN[T](m.Width())
}

func (m *ZipMap[In, T]) Next() (hwy.Vec[T], bool) {
	v, ok := m.inner.Next()
	if !ok {
		return hwy.Vec[T]{}, false
	}
	return m.fn(v), true
}

// End maps the padded tail of the wrapped stream. The valid-lane count is
// rescaled from the wrapped stream's element size to T's.
func (m *ZipMap[In, T]) End() (hwy.Vec[T], int, bool) {
	v, n, ok := m.inner.End()
	if !ok {
		return hwy.Vec[T]{}, 0, false
	}
	return m.fn(v), m.toOut(n), true
}

// nextAt, endAt and seek take positions and counts in output lanes.
func (m *ZipMap[In, T]) nextAt(pos int) hwy.Vec[T] {
	return m.fn(m.inner.nextAt(m.toIn(pos)))
}

func (m *ZipMap[In, T]) endAt(pos, n int) hwy.Vec[T] {
	return m.fn(m.inner.endAt(m.toIn(pos), m.toIn(n)))
}

func (m *ZipMap[In, T]) seek(pos int) { m.inner.seek(m.toIn(pos)) }

// toOut converts a count of wrapped elements to output lanes.
func (m *ZipMap[In, T]) toOut(n int) int { return n * m.inner.Size() / m.Size() }

// toIn converts a count of output lanes to wrapped elements.
func (m *ZipMap[In, T]) toIn(n int) int { return n * m.Size() / m.inner.Size() }
