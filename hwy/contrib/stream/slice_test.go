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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyzip/hwy"
)

func iota32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func TestStreamNextEnd(t *testing.T) {
	s := FromSlice(iota32(10), WithLanes(4))

	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, 10, s.ScalarLen())
	assert.Equal(t, 2, s.VectorLen())

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, []float32{0, 1, 2, 3}, v.Data())

	v, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, []float32{4, 5, 6, 7}, v.Data())
	assert.Equal(t, 8, s.ScalarPos())
	assert.Equal(t, 2, s.VectorPos())

	_, ok = s.Next()
	assert.False(t, ok, "Next with 2 elements left")
	assert.Equal(t, 8, s.ScalarPos(), "failed Next must not move")

	v, n, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 2, n)
	if diff := cmp.Diff([]float32{8, 9, 0, 0}, v.Data()); diff != "" {
		t.Errorf("tail mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, s.ScalarPos())

	_, _, ok = s.End()
	assert.False(t, ok, "second End")
}

func TestStreamNoTail(t *testing.T) {
	s := FromSlice(iota32(8), WithLanes(4))
	count := 0
	for _, ok := s.Next(); ok; _, ok = s.Next() {
		count++
	}
	assert.Equal(t, 2, count)

	_, _, ok := s.End()
	assert.False(t, ok)
}

func TestStreamShorterThanWidth(t *testing.T) {
	s := FromSlice([]int16{5, 6, 7}, WithLanes(8))

	_, ok := s.Next()
	assert.False(t, ok)

	v, n, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int16{5, 6, 7, 0, 0, 0, 0, 0}, v.Data())
}

func TestStreamEmpty(t *testing.T) {
	s := FromSlice([]float64{})

	_, ok := s.Next()
	assert.False(t, ok)
	_, _, ok = s.End()
	assert.False(t, ok)
	assert.Equal(t, 0, s.VectorLen())
}

func TestStreamDefault(t *testing.T) {
	s := FromSliceDefault([]int32{1, 2, 3, 4, 5}, -1, WithLanes(4))

	assert.Equal(t, []int32{-1, -1, -1, -1}, s.Default().Data())

	_, ok := s.Next()
	require.True(t, ok)
	v, n, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int32{5, -1, -1, -1}, v.Data())
}

func TestStreamAdvance(t *testing.T) {
	s := FromSlice(iota32(10), WithLanes(4))

	s.Advance(3)
	assert.Equal(t, 3, s.ScalarPos())
	assert.Equal(t, 0, s.VectorPos())

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, []float32{3, 4, 5, 6}, v.Data())

	s.Advance(100)
	assert.Equal(t, 10, s.ScalarPos(), "Advance stops at the end")
	_, _, ok = s.End()
	assert.False(t, ok)
}

func TestStreamFinalize(t *testing.T) {
	s := FromSlice(iota32(13), WithLanes(4))
	_, _ = s.Next()

	s.Finalize()
	assert.Equal(t, s.ScalarLen(), s.ScalarPos())
	_, ok := s.Next()
	assert.False(t, ok)
	_, _, ok = s.End()
	assert.False(t, ok)
}

func TestStreamWidthOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"runtime", nil, hwy.MaxLanes[float32]()},
		{"128bit", []Option{WithTag(hwy.FixedTag128[float32]{})}, 4},
		{"256bit", []Option{WithTag(hwy.FixedTag256[float32]{})}, 8},
		{"512bit", []Option{WithTag(hwy.FixedTag512[float32]{})}, 16},
		{"lanes", []Option{WithLanes(3)}, 3},
		{"lanes beat tag", []Option{WithLanes(2), WithTag(hwy.FixedTag512[float32]{})}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromSlice(iota32(4), tt.opts...)
			assert.Equal(t, tt.want, s.Width())
			assert.Equal(t, tt.want, s.Default().NumLanes())
		})
	}
}

func TestStreamInvalidLanes(t *testing.T) {
	assert.Panics(t, func() { FromSlice(iota32(4), WithLanes(-1)) })
}

func TestStreamVectorsAreCopies(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	s := FromSlice(data, WithLanes(4))

	v, ok := s.Next()
	require.True(t, ok)
	v.Data()[0] = 42
	assert.Equal(t, int32(1), data[0])
}
