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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyzip/hwy"
)

func TestForEachVisitsTail(t *testing.T) {
	var lanes []int
	ForEach(FromSlice(iota32(10), WithLanes(4)), func(v hwy.Vec[float32]) {
		lanes = append(lanes, v.NumLanes())
	})
	assert.Equal(t, []int{4, 4, 4}, lanes)
}

func TestForEachN(t *testing.T) {
	var counts []int
	ForEachN(FromSlice(iota32(10), WithLanes(4)), func(_ hwy.Vec[float32], n int) {
		counts = append(counts, n)
	})
	assert.Equal(t, []int{4, 4, 2}, counts)
}

func TestForEachEmpty(t *testing.T) {
	ForEach(FromSlice([]float32{}, WithLanes(4)), func(hwy.Vec[float32]) {
		t.Fatal("callback on an empty stream")
	})
}

// A horizontal sum over the reduced vector gives the same answer at every
// width because padding lanes are zero.
func TestReduceWidthIndependent(t *testing.T) {
	data := iota32(37)
	for _, lanes := range []int{1, 2, 4, 8, 16} {
		t.Run(fmt.Sprintf("W=%d", lanes), func(t *testing.T) {
			z := NewZip2(FromSlice(data, WithLanes(lanes)), FromSlice(data, WithLanes(lanes)))
			acc := Reduce(z, hwy.ZeroN[float32](lanes), func(acc hwy.Vec[float32], v pair) hwy.Vec[float32] {
				return hwy.MulAdd(v.A, v.B, acc)
			})
			// Sum of squares 0..36.
			assert.Equal(t, float32(36*37*73/6), hwy.ReduceSum(acc))
		})
	}
}

func TestReduceCountsElements(t *testing.T) {
	got := Reduce(FromSlice(make([]int8, 23), WithLanes(16)), 0, func(acc int, v hwy.Vec[int8]) int {
		return acc + 1
	})
	assert.Equal(t, 2, got)
}

var errStop = errors.New("stop")

func TestTryForEach(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		calls := 0
		err := TryForEach(FromSlice(iota32(9), WithLanes(4)), func(hwy.Vec[float32]) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := FromSlice(iota32(16), WithLanes(4))
		calls := 0
		err := TryForEach(s, func(v hwy.Vec[float32]) error {
			calls++
			if v.Lane(0) == 4 {
				return errStop
			}
			return nil
		})
		assert.ErrorIs(t, err, errStop)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 8, s.ScalarPos())
	})

	t.Run("error in tail", func(t *testing.T) {
		err := TryForEach(FromSlice(iota32(5), WithLanes(4)), func(v hwy.Vec[float32]) error {
			if v.Lane(0) == 4 {
				return errStop
			}
			return nil
		})
		assert.ErrorIs(t, err, errStop)
	})
}

func TestTryReduce(t *testing.T) {
	sum := func(acc float32, v hwy.Vec[float32]) (float32, error) {
		return acc + hwy.ReduceSum(v), nil
	}
	got, err := TryReduce(FromSlice(iota32(10), WithLanes(4)), 0, sum)
	require.NoError(t, err)
	assert.Equal(t, float32(45), got)

	failAt := func(acc float32, v hwy.Vec[float32]) (float32, error) {
		if v.Lane(0) == 8 {
			return -1, errStop
		}
		return acc + hwy.ReduceSum(v), nil
	}
	got, err = TryReduce(FromSlice(iota32(10), WithLanes(4)), 0, failAt)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, float32(28), got, "accumulator before the failing step")
}

func TestFill(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		dst := make([]float32, 10)
		n := Fill(FromSlice(iota32(10), WithLanes(4)), dst)
		assert.Equal(t, 10, n)
		assert.Equal(t, iota32(10), dst)
	})

	t.Run("short destination", func(t *testing.T) {
		dst := make([]float32, 6)
		n := Fill(FromSlice(iota32(10), WithLanes(4)), dst)
		assert.Equal(t, 6, n)
		assert.Equal(t, iota32(6), dst)
	})

	t.Run("padding not written", func(t *testing.T) {
		dst := []int32{-1, -1, -1, -1, -1, -1, -1}
		n := Fill(FromSliceDefault([]int32{1, 2, 3, 4, 5}, 9, WithLanes(4)), dst)
		assert.Equal(t, 5, n)
		assert.Equal(t, []int32{1, 2, 3, 4, 5, -1, -1}, dst)
	})
}

func TestAll(t *testing.T) {
	var ns []int
	for _, n := range All(FromSlice(iota32(10), WithLanes(4))) {
		ns = append(ns, n)
	}
	assert.Equal(t, []int{4, 4, 2}, ns)
}

func TestAllBreak(t *testing.T) {
	s := FromSlice(iota32(10), WithLanes(4))
	for v := range All(s) {
		assert.Equal(t, float32(0), v.Lane(0))
		break
	}
	assert.Equal(t, 4, s.ScalarPos())

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, float32(4), v.Lane(0))
}
