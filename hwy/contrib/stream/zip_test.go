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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyzip/hwy"
)

func fill32(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// TestZipSumTwoConstants sums 100 elements of 2.0 and 3.0 lane by lane.
func TestZipSumTwoConstants(t *testing.T) {
	tests := []struct {
		lanes     int
		wantNext  int
		wantTail  int
		wantLanes []float32
	}{
		{lanes: 4, wantNext: 25, wantTail: 0, wantLanes: []float32{125, 125, 125, 125}},
		{lanes: 8, wantNext: 12, wantTail: 4, wantLanes: []float32{65, 65, 65, 65, 60, 60, 60, 60}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("W=%d", tt.lanes), func(t *testing.T) {
			z := NewZip2(
				FromSlice(fill32(100, 2), WithLanes(tt.lanes)),
				FromSlice(fill32(100, 3), WithLanes(tt.lanes)),
			)
			require.Equal(t, tt.lanes, z.Width())

			acc := hwy.ZeroN[float32](tt.lanes)
			nexts := 0
			for v, ok := z.Next(); ok; v, ok = z.Next() {
				acc = hwy.Add(acc, hwy.Add(v.A, v.B))
				nexts++
			}
			assert.Equal(t, tt.wantNext, nexts)

			v, n, ok := z.End()
			if tt.wantTail == 0 {
				assert.False(t, ok, "unexpected tail")
			} else {
				require.True(t, ok)
				assert.Equal(t, tt.wantTail, n)
				acc = hwy.Add(acc, hwy.Add(v.A, v.B))
			}

			if diff := cmp.Diff(tt.wantLanes, acc.Data()); diff != "" {
				t.Errorf("accumulator mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, float32(500), hwy.ReduceSum(acc))
		})
	}
}

// positions reports the scalar position of every member of a zip.
func positions(members ...interface{ ScalarPos() int }) []int {
	out := make([]int, len(members))
	for i, m := range members {
		out[i] = m.ScalarPos()
	}
	return out
}

// Every zip of length L and width W yields L/W full vectors and then a
// tail of L%W lanes, or no tail.
func TestZipLengthInvariant(t *testing.T) {
	for _, lanes := range []int{1, 2, 4, 8, 16} {
		for _, length := range []int{0, 1, 3, 4, 7, 16, 33, 100} {
			t.Run(fmt.Sprintf("W=%d/L=%d", lanes, length), func(t *testing.T) {
				z := NewZip3(
					FromSlice(make([]int32, length), WithLanes(lanes)),
					FromSlice(make([]int32, length), WithLanes(lanes)),
					FromSlice(make([]int32, length), WithLanes(lanes)),
				)
				nexts := 0
				for _, ok := z.Next(); ok; _, ok = z.Next() {
					nexts++
				}
				assert.Equal(t, length/lanes, nexts)

				_, n, ok := z.End()
				assert.Equal(t, length%lanes != 0, ok)
				assert.Equal(t, length%lanes, n)
				assert.Equal(t, length, z.ScalarPos())

				_, _, ok = z.End()
				assert.False(t, ok, "End after the tail")
			})
		}
	}
}

func requireLengthMismatch(t *testing.T, want LengthMismatchError, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, ErrLengthMismatch)
		var lm *LengthMismatchError
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, want, *lm)
	}()
	fn()
}

func TestZipLengthMismatch(t *testing.T) {
	s := func(n int) *Stream[int32] { return FromSlice(make([]int32, n), WithLanes(4)) }

	tests := []struct {
		name string
		want LengthMismatchError
		fn   func()
	}{
		{"Zip2", LengthMismatchError{Member: 1, Want: 8, Got: 9}, func() {
			NewZip2(s(8), s(9))
		}},
		{"Zip2 shorter", LengthMismatchError{Member: 1, Want: 8, Got: 0}, func() {
			NewZip2(s(8), s(0))
		}},
		{"Zip3 middle", LengthMismatchError{Member: 1, Want: 8, Got: 7}, func() {
			NewZip3(s(8), s(7), s(8))
		}},
		{"Zip3 last", LengthMismatchError{Member: 2, Want: 8, Got: 7}, func() {
			NewZip3(s(8), s(8), s(7))
		}},
		{"Zip4", LengthMismatchError{Member: 3, Want: 8, Got: 1}, func() {
			NewZip4(s(8), s(8), s(8), s(1))
		}},
		{"Zip5", LengthMismatchError{Member: 4, Want: 8, Got: 1}, func() {
			NewZip5(s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip6", LengthMismatchError{Member: 5, Want: 8, Got: 1}, func() {
			NewZip6(s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip7", LengthMismatchError{Member: 6, Want: 8, Got: 1}, func() {
			NewZip7(s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip8", LengthMismatchError{Member: 7, Want: 8, Got: 1}, func() {
			NewZip8(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip9", LengthMismatchError{Member: 8, Want: 8, Got: 1}, func() {
			NewZip9(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip10", LengthMismatchError{Member: 9, Want: 8, Got: 1}, func() {
			NewZip10(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip11", LengthMismatchError{Member: 10, Want: 8, Got: 1}, func() {
			NewZip11(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip12", LengthMismatchError{Member: 11, Want: 8, Got: 1}, func() {
			NewZip12(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip13", LengthMismatchError{Member: 12, Want: 8, Got: 1}, func() {
			NewZip13(s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
		{"Zip13 first follower", LengthMismatchError{Member: 1, Want: 8, Got: 16}, func() {
			NewZip13(s(8), s(16), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(8), s(1))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireLengthMismatch(t, tt.want, tt.fn)
		})
	}
}

func TestLengthMismatchErrorMessage(t *testing.T) {
	err := &LengthMismatchError{Member: 2, Want: 10, Got: 3}
	assert.Equal(t, "stream: can only zip streams of the same length: member 2 has 3 elements, leader has 10", err.Error())
}

func TestZipPositionSynchrony(t *testing.T) {
	z := NewZip3(
		FromSlice(iota32(10), WithLanes(4)),
		FromSlice(make([]int32, 10), WithLanes(4)),
		FromSlice(make([]uint32, 10), WithLanes(4)),
	)
	inSync := func(want int) {
		t.Helper()
		assert.Equal(t, []int{want, want, want}, positions(z.a, z.b, z.c))
	}

	inSync(0)
	_, ok := z.Next()
	require.True(t, ok)
	inSync(4)

	z.Advance(1)
	inSync(5)

	v, ok := z.Next()
	require.True(t, ok)
	assert.Equal(t, []float32{5, 6, 7, 8}, v.A.Data())
	inSync(9)

	_, ok = z.Next()
	require.False(t, ok)
	inSync(9)

	_, n, ok := z.End()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	inSync(10)

	z.Advance(5)
	inSync(10)
}

func TestZipAdvancePastEnd(t *testing.T) {
	z := NewZip2(
		FromSlice(iota32(6), WithLanes(4)),
		FromSlice(iota32(6), WithLanes(4)),
	)
	z.Advance(50)
	assert.Equal(t, []int{6, 6}, positions(z.a, z.b))
	_, ok := z.Next()
	assert.False(t, ok)
	_, _, ok = z.End()
	assert.False(t, ok)
}

func TestZipFinalize(t *testing.T) {
	z := NewZip2(
		FromSlice(iota32(11), WithLanes(4)),
		FromSlice(iota32(11), WithLanes(4)),
	)
	assert.Equal(t, 2, z.VectorLen())
	_, _ = z.Next()
	assert.Equal(t, 1, z.VectorPos())

	z.Finalize()
	assert.Equal(t, []int{11, 11}, positions(z.a, z.b))
	_, _, ok := z.End()
	assert.False(t, ok)
}

// Every input element shows up in exactly one valid lane, and the members
// of a lane come from the same index.
func TestZipElementConservation(t *testing.T) {
	const length = 37
	a := make([]int32, length)
	b := make([]int64, length)
	c := make([]float32, length)
	for i := range length {
		a[i] = int32(i)
		b[i] = int64(2 * i)
		c[i] = float32(3 * i)
	}

	// int64 vectors carry 2 lanes in 16 bytes, so widths are pinned.
	z := NewZip3(
		FromSlice(a, WithLanes(4)),
		FromSlice(b, WithLanes(4)),
		FromSlice(c, WithLanes(4)),
	)

	var seen []int32
	ForEachN(z, func(v Tuple3[hwy.Vec[int32], hwy.Vec[int64], hwy.Vec[float32]], n int) {
		va, vb, vc := v.Unpack()
		for i := range n {
			x := va.Lane(i)
			assert.Equal(t, int64(2*x), vb.Lane(i), "b at index %d", x)
			assert.Equal(t, float32(3*x), vc.Lane(i), "c at index %d", x)
			seen = append(seen, x)
		}
	})

	if diff := cmp.Diff(a, seen); diff != "" {
		t.Errorf("elements lost or duplicated (-want +got):\n%s", diff)
	}
}

func TestZipTailUsesMemberDefaults(t *testing.T) {
	z := NewZip2(
		FromSliceDefault([]float32{1, 2, 3, 4, 5}, 1, WithLanes(4)),
		FromSliceDefault([]float32{1, 2, 3, 4, 5}, -1, WithLanes(4)),
	)

	d := z.Default()
	assert.Equal(t, []float32{1, 1, 1, 1}, d.A.Data())
	assert.Equal(t, []float32{-1, -1, -1, -1}, d.B.Data())

	_, ok := z.Next()
	require.True(t, ok)
	v, n, ok := z.End()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, []float32{5, 1, 1, 1}, v.A.Data())
	assert.Equal(t, []float32{5, -1, -1, -1}, v.B.Data())
}

func TestZipLeaderProperties(t *testing.T) {
	z := NewZip2(
		FromSlice(make([]float64, 9), WithLanes(2)),
		FromSlice(make([]int64, 9), WithLanes(2)),
	)
	assert.Equal(t, 2, z.Width())
	assert.Equal(t, 8, z.Size())
	assert.Equal(t, 9, z.ScalarLen())
	assert.Equal(t, 4, z.VectorLen())
}

func TestZipNested(t *testing.T) {
	inner := NewZip2(
		FromSlice(iota32(6), WithLanes(4)),
		FromSlice(fill32(6, 10), WithLanes(4)),
	)
	outer := NewZip2(inner, FromSlice(fill32(6, 100), WithLanes(4)))

	v, ok := outer.Next()
	require.True(t, ok)
	assert.Equal(t, []float32{0, 1, 2, 3}, v.A.A.Data())
	assert.Equal(t, []float32{10, 10, 10, 10}, v.A.B.Data())
	assert.Equal(t, []float32{100, 100, 100, 100}, v.B.Data())
	assert.Equal(t, []int{4, 4}, positions(outer.a, outer.b))
	assert.Equal(t, []int{4, 4}, positions(inner.a, inner.b))

	v, n, ok := outer.End()
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{4, 5, 0, 0}, v.A.A.Data())
	assert.Equal(t, []float32{100, 100, 0, 0}, v.B.Data())
	assert.Equal(t, []int{6, 6}, positions(inner.a, inner.b))

	outer.Advance(-6)
	assert.Equal(t, []int{0, 0}, positions(outer.a, outer.b))
	assert.Equal(t, []int{0, 0}, positions(inner.a, inner.b))
}

func TestZipNestedAsFollower(t *testing.T) {
	inner := NewZip2(
		FromSlice(iota32(5), WithLanes(4)),
		FromSlice(iota32(5), WithLanes(4)),
	)
	outer := NewZip2(FromSlice(fill32(5, 1), WithLanes(4)), inner)

	total := Reduce(outer, float32(0), func(acc float32, v Tuple2[hwy.Vec[float32], Tuple2[hwy.Vec[float32], hwy.Vec[float32]]]) float32 {
		return acc + hwy.ReduceSum(hwy.Add(v.A, hwy.Add(v.B.A, v.B.B)))
	})
	// 5 ones, plus 2*(0+1+2+3+4).
	assert.Equal(t, float32(25), total)
	assert.Equal(t, []int{5, 5}, positions(inner.a, inner.b))
}

func TestZip13(t *testing.T) {
	s := func(v int32) *Stream[int32] {
		data := make([]int32, 6)
		for i := range data {
			data[i] = v
		}
		return FromSlice(data, WithLanes(4))
	}
	z := NewZip13(s(1), s(2), s(3), s(4), s(5), s(6), s(7), s(8), s(9), s(10), s(11), s(12), s(13))

	var total int32
	ForEachN(z, func(v Tuple13[hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32], hwy.Vec[int32]], n int) {
		a, b, c, d, e, f, g, h, i, j, k, l, m := v.Unpack()
		for _, vec := range []hwy.Vec[int32]{a, b, c, d, e, f, g, h, i, j, k, l, m} {
			for lane := range n {
				total += vec.Lane(lane)
			}
		}
		assert.Equal(t, int32(13), m.Lane(0))
	})
	// 6 elements of 1+2+...+13.
	assert.Equal(t, int32(6*91), total)

	want := []int{6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6}
	assert.Equal(t, want, positions(z.a, z.b, z.c, z.d, z.e, z.f, z.g, z.h, z.i, z.j, z.k, z.l, z.m))
}

func TestTupleHelpers(t *testing.T) {
	tup := T3(1, "two", 3.0)
	a, b, c := tup.Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.Equal(t, 3.0, c)

	assert.Equal(t, Tuple4[int, int, int, int]{A: 7, B: 7, C: 7, D: 7}, Splat4(7))
	assert.Equal(t, Tuple2[string, int]{A: "x", B: 1}, T2("x", 1))
}
