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

package hwy

// TailMask creates a runtime-width mask with the first count lanes active.
//
// Example:
//
//	lanes := hwy.MaxLanes[float32]()
//	remaining := len(data) % lanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](MaxLanes[T](), count)
}

// FirstN creates a mask of lanes lanes with the first count active.
// count is clamped to [0, lanes].
func FirstN[T Lanes](lanes, count int) Mask[T] {
	count = max(0, min(count, lanes))
	bits := make([]bool, lanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail splits size elements into full vectors and one tail.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of vector width.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of vector width.
func IsAligned[T Lanes](size int) bool {
	return size%MaxLanes[T]() == 0
}
