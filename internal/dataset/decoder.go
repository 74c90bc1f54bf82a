// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"iter"
	"strings"
)

// DecodeResult is the output of a successful decode.
type DecodeResult struct {
	Records []string
	// Schema is the schema fixed by the first non-blank line, or SchemaNone
	// when there was no such line.
	Schema Schema
	// Lines is the number of non-blank lines decoded.
	Lines int
}

// SplitLines splits content on newlines. A trailing carriage return is
// stripped from every line and a final empty line is dropped.
func SplitLines(content []byte) []string {
	text := string(content)
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// NonBlank yields the 1-based line number and content of every non-blank line.
func NonBlank(lines []string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range lines {
			if IsBlank(line) {
				continue
			}
			if !yield(i+1, line) {
				return
			}
		}
	}
}

// Decode normalizes every non-blank line using the schema detected from the
// first one.
func Decode(lines []string) ([]string, error) {
	result, err := DecodeWithMeta(lines)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// DecodeWithMeta is Decode, also reporting the detected schema. Decoding stops
// at the first line that fails; no partial result is returned.
func DecodeWithMeta(lines []string) (DecodeResult, error) {
	var (
		schema   Schema
		detected bool
	)
	records := make([]string, 0, len(lines))
	for lineNo, line := range NonBlank(lines) {
		if !detected {
			s, ok := Detect(line)
			if !ok {
				return DecodeResult{}, &UnrecognizedSchemaError{Line: lineNo, Raw: line}
			}
			schema, detected = s, true
		}
		record, err := schema.Normalize(line)
		if err != nil {
			return DecodeResult{}, &InvalidRecordError{Line: lineNo, Raw: line, Schema: schema, Err: err}
		}
		records = append(records, record)
	}
	return DecodeResult{
		Records: records,
		Schema:  schema,
		Lines:   len(records),
	}, nil
}
