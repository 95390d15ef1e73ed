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

import "unsafe"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "128bit", etc.)
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	lanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int { return currentWidth }

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string { return currentLevel.String() }

// MaxLanes returns the number of T lanes at the runtime width.
func (ScalableTag[T]) MaxLanes() int { return MaxLanes[T]() }

// FixedTag128 forces 128-bit vectors (SSE, NEON).
// Use it when results must not depend on the machine, e.g. in tests.
type FixedTag128[T Lanes] struct{}

func (FixedTag128[T]) Width() int    { return 16 }
func (FixedTag128[T]) Name() string  { return "128bit" }
func (FixedTag128[T]) MaxLanes() int { return 16 / SizeOf[T]() }

// FixedTag256 forces 256-bit vectors (AVX2).
type FixedTag256[T Lanes] struct{}

func (FixedTag256[T]) Width() int    { return 32 }
func (FixedTag256[T]) Name() string  { return "256bit" }
func (FixedTag256[T]) MaxLanes() int { return 32 / SizeOf[T]() }

// FixedTag512 forces 512-bit vectors (AVX-512, SVE).
type FixedTag512[T Lanes] struct{}

func (FixedTag512[T]) Width() int    { return 64 }
func (FixedTag512[T]) Name() string  { return "512bit" }
func (FixedTag512[T]) MaxLanes() int { return 64 / SizeOf[T]() }

// SizeOf returns the size of one T lane in bytes.
func SizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// LanesFor returns how many T lanes fit in a vector of the tag's width.
// A nil tag means the runtime width.
func LanesFor[T Lanes](tag Tag) int {
	if tag == nil {
		return MaxLanes[T]()
	}
	return tag.Width() / SizeOf[T]()
}
