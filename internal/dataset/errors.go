// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"fmt"
	"strings"
)

// FileNotFoundError is returned when no file exists for a logical name under
// any of the registered extensions.
type FileNotFoundError struct {
	Dir   string
	Name  string
	Tried []string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("data file not found: no %q in %s (tried %s)",
		e.Name, e.Dir, strings.Join(e.Tried, ", "))
}

// UnrecognizedSchemaError is returned when the first non-blank line of a jsonl
// file matches none of the supported schemas.
type UnrecognizedSchemaError struct {
	Line int
	Raw  string
}

func (e *UnrecognizedSchemaError) Error() string {
	return fmt.Sprintf("line %d: unrecognized record schema: %s", e.Line, e.Raw)
}

// InvalidRecordError is returned when a line does not conform to the schema
// fixed for its file.
type InvalidRecordError struct {
	Line   int
	Raw    string
	Schema Schema
	Err    error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("line %d: invalid %s record: %v", e.Line, e.Schema, e.Err)
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned for a file whose extension has no
// registered container.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported data format %q", e.Ext)
}

