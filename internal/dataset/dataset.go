// SPDX-License-Identifier: Apache-2.0

// Package dataset detects the record schema of training data files and
// decodes them into normalized example strings.
package dataset

import (
	"context"
	"fmt"
)

// DataFile is a resolved data file handed to a Container.
type DataFile struct {
	// Path is the file the content was read from.
	Path string
	// Ext is the lower-cased extension without its leading dot.
	Ext     string
	Content []byte
}

// LoadResult is the output of a successful load.
type LoadResult struct {
	Path      string   `json:"path"`
	Container string   `json:"container"`
	Schema    Schema   `json:"schema"`
	Records   []string `json:"records"`
}

// ExpectSchema checks the detected schema against the schema named want. An
// empty name accepts any schema.
func (r LoadResult) ExpectSchema(want string) error {
	if want == "" {
		return nil
	}
	expected, err := ParseSchema(want)
	if err != nil {
		return err
	}
	if r.Schema != expected {
		return fmt.Errorf("%s: detected schema %s, expected %s", r.Path, r.Schema, expected)
	}
	return nil
}

// Container reads one kind of data file into normalized records.
type Container interface {
	// Extension is the file extension, without the dot, this container reads.
	Extension() string
	Read(ctx context.Context, file DataFile) (DecodeResult, error)
}
