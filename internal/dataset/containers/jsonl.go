// SPDX-License-Identifier: Apache-2.0

package containers

import (
	"context"

	"github.com/trainset/trainset/internal/dataset"
)

// JSONLContainer reads newline-delimited JSON records. The record schema is
// detected from the first non-blank line and applied to the whole file.
type JSONLContainer struct{}

// NewJSONLContainer creates a new JSONLContainer.
func NewJSONLContainer() *JSONLContainer {
	return &JSONLContainer{}
}

func (c *JSONLContainer) Extension() string {
	return "jsonl"
}

func (c *JSONLContainer) Read(_ context.Context, file dataset.DataFile) (dataset.DecodeResult, error) {
	return dataset.DecodeWithMeta(dataset.SplitLines(file.Content))
}
