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

// Package stream iterates slices as sequences of hwy vectors and drives
// several of them in lockstep.
//
// # Streams
//
// A Stream yields full vectors through Next and, once fewer than Width
// elements remain, at most one padded tail vector through End:
//
//	s := stream.FromSlice(data)
//	for v, ok := s.Next(); ok; v, ok = s.Next() {
//	    // full vector
//	}
//	if v, n, ok := s.End(); ok {
//	    // v has n valid lanes, the rest hold s.Default()
//	}
//
// # Zip
//
// NewZip2 .. NewZip13 combine streams of equal scalar length into one
// stream of Tuple2 .. Tuple13 values. The first stream leads: it answers
// every position and width query, and the others are read at the leader's
// position through an internal path that only this package can call. That
// path relies on every member holding the same amount of data at the same
// position, which is why zipping streams of different lengths panics with a
// *LengthMismatchError before anything is produced.
//
//	z := stream.NewZip2(stream.FromSlice(xs), stream.FromSlice(ys))
//	dot := stream.Reduce(z, hwy.ZeroN[float32](z.Width()),
//	    func(acc hwy.Vec[float32], t stream.Tuple2[hwy.Vec[float32], hwy.Vec[float32]]) hwy.Vec[float32] {
//	        return hwy.MulAdd(t.A, t.B, acc)
//	    })
//	result := hwy.ReduceSum(dot)
//
// All zipped streams are assumed to share the same vector width.
//
// # Map, ForEach and Reduce
//
// Map wraps a zipped stream with a per-vector transform and is itself a
// zippable stream, so it can be mapped or zipped again. ForEach and Reduce
// drain a stream, calling the callback once per full vector and once more
// for the tail.
//
// The tail is padded with default values and Reduce folds the padded lanes
// like any other, so the lane-wise result depends on the vector width. Use
// a horizontal reduction such as hwy.ReduceSum (with a zero default), or
// ForEachN and the valid-lane count, to get width-independent results.
//
// Values returned by this package are not safe for concurrent use.
package stream

//go:generate go run ../../../cmd/zipgen --min 2 --max 13 --package stream --output zip.gen.go
