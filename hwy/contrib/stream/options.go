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

type options struct {
	tag   hwy.Tag
	lanes int
}

// Option configures the vector width of a Stream.
type Option func(*options)

// WithTag sizes vectors for the tag's width instead of the runtime width.
//
//	stream.FromSlice(data, stream.WithTag(hwy.FixedTag256[float32]{}))
func WithTag(tag hwy.Tag) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// WithLanes fixes the number of lanes per vector. A positive count takes
// precedence over WithTag.
func WithLanes(lanes int) Option {
	return func(o *options) {
		o.lanes = lanes
	}
}

func resolveLanes[T hwy.Lanes](opts []Option) int {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	lanes := o.lanes
	if lanes == 0 {
		lanes = hwy.LanesFor[T](o.tag)
	}
	if lanes < 1 {
		panic("stream: vectors must have at least one lane")
	}
	return lanes
}
