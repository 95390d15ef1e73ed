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
)

// ErrLengthMismatch is matched by the value NewZip* panics with when the
// zipped streams have different scalar lengths.
var ErrLengthMismatch = errors.New("stream: can only zip streams of the same length")

// LengthMismatchError reports the first zip member whose scalar length
// differs from the leader's.
type LengthMismatchError struct {
	Member int // index of the offending member, 1..N-1
	Want   int // leader scalar length
	Got    int // member scalar length
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: member %d has %d elements, leader has %d", ErrLengthMismatch, e.Member, e.Got, e.Want)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// checkLengths panics unless every length equals the first.
func checkLengths(lens ...int) {
	for i, n := range lens[1:] {
		if n != lens[0] {
			panic(&LengthMismatchError{Member: i + 1, Want: lens[0], Got: n})
		}
	}
}
