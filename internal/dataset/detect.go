// SPDX-License-Identifier: Apache-2.0

package dataset

// Detect returns the first schema, in detection priority order, whose shape
// line satisfies. The second result is false when no schema matches.
func Detect(line string) (Schema, bool) {
	for _, s := range detectionOrder {
		if s.Matches(line) {
			return s, true
		}
	}
	return SchemaNone, false
}
