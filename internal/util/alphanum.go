// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

// AlphanumCompare reports whether a precedes b in natural order, where runs
// of digits compare by numeric value, so "P2" sorts before "P10".
func AlphanumCompare(a, b string) bool {
	chunks_a := chunkifyRegexp.FindAllString(a, -1)
	chunks_b := chunkifyRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		if chunks_a[i] == chunks_b[i] {
			continue
		}

		a_int, a_err := strconv.Atoi(chunks_a[i])
		b_int, b_err := strconv.Atoi(chunks_b[i])

		// If both chunks are numeric, compare them as integers.
		if a_err == nil && b_err == nil {
			return a_int < b_int
		}

		return chunks_a[i] < chunks_b[i]
	}

	// One string is a prefix of the other: the shorter one sorts first.
	return len(chunks_a) < len(chunks_b)
}
