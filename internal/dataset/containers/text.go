// SPDX-License-Identifier: Apache-2.0

package containers

import (
	"context"

	"github.com/trainset/trainset/internal/dataset"
)

// TextContainer reads plain text files where every non-blank line is already
// a training example.
type TextContainer struct{}

func NewTextContainer() *TextContainer {
	return &TextContainer{}
}

func (c *TextContainer) Extension() string {
	return "txt"
}

func (c *TextContainer) Read(_ context.Context, file dataset.DataFile) (dataset.DecodeResult, error) {
	lines := dataset.SplitLines(file.Content)
	records := make([]string, 0, len(lines))
	for _, line := range dataset.NonBlank(lines) {
		records = append(records, line)
	}
	return dataset.DecodeResult{
		Records: records,
		Schema:  dataset.SchemaNone,
		Lines:   len(records),
	}, nil
}
