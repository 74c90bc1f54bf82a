// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trainset/trainset/internal/dataset"
	"github.com/trainset/trainset/internal/dataset/containers"
)

// MetadataLoadDataset describes the load_dataset tool.
var MetadataLoadDataset = &mcp.Tool{
	Name: "load_dataset",
	Description: "Load a fine-tuning data file and return its normalized training examples. " +
		"Supported containers: jsonl (chat, tool, text or completion records, schema detected " +
		"from the first non-blank line) and txt (one example per non-blank line). " +
		"Pass either a file path, or a directory and a logical name such as \"train\"; " +
		"the logical name is resolved by trying .jsonl before .txt.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path to a .jsonl or .txt data file",
			},
			"directory": map[string]interface{}{
				"type":        "string",
				"description": "Directory holding the data set. Used together with name.",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Logical name of the data file without extension, e.g. train, valid or test.",
			},
			"expect_schema": map[string]interface{}{
				"type":        "string",
				"description": "Fail unless the detected schema is this one.",
				"enum":        []string{"chat", "tool", "text", "completion", "none"},
			},
		},
	},
}

// InputLoadDataset is the input for the LoadDataset tool.
type InputLoadDataset struct {
	Path      string `json:"path"`
	Directory string `json:"directory"`
	Name      string `json:"name"`

	// ExpectSchema, when set, must equal the detected schema.
	ExpectSchema string `json:"expect_schema"`
}

// OutputLoadDataset is the output for the LoadDataset tool.
type OutputLoadDataset struct {
	Path      string `json:"path"`
	Container string `json:"container"`
	// Schema is the detected record schema, "none" for txt files.
	Schema       string   `json:"schema"`
	Records      []string `json:"records"`
	TotalRecords int      `json:"total_records"`
}

// MetadataDetectSchema describes the detect_schema tool.
var MetadataDetectSchema = &mcp.Tool{
	Name: "detect_schema",
	Description: "Detect which training record schema a single JSON line uses. " +
		"Schemas are tried in the order chat, tool, text, completion and the first match wins.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"line"},
		"properties": map[string]interface{}{
			"line": map[string]interface{}{
				"type":        "string",
				"description": "One line of a jsonl data file",
			},
		},
	},
}

type InputDetectSchema struct {
	Line string `json:"line"`
}

type OutputDetectSchema struct {
	Schema     string `json:"schema"`
	Matched    bool   `json:"matched"`
	Normalized string `json:"normalized,omitempty"`
}

// MetadataListFormats describes the list_formats tool.
var MetadataListFormats = &mcp.Tool{
	Name:        "list_formats",
	Description: "List the supported data file extensions and record schemas, in priority order.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

type InputListFormats struct{}

type OutputListFormats struct {
	Extensions []string `json:"extensions"`
	Schemas    []string `json:"schemas"`
}

// LoadDataset loads a data file by path or by directory and logical name.
func LoadDataset(ctx context.Context, _ *mcp.CallToolRequest, input InputLoadDataset) (*mcp.CallToolResult, OutputLoadDataset, error) {
	loader := containers.Default()

	var (
		result dataset.LoadResult
		err    error
	)
	switch {
	case input.Path != "":
		result, err = loader.LoadFromFileWithMeta(ctx, input.Path)
	case input.Directory != "" && input.Name != "":
		result, err = loader.LoadFromDirectoryWithMeta(ctx, input.Directory, input.Name)
	default:
		return nil, OutputLoadDataset{}, fmt.Errorf("path or directory and name are required")
	}
	if err != nil {
		return nil, OutputLoadDataset{}, err
	}
	if err := result.ExpectSchema(input.ExpectSchema); err != nil {
		return nil, OutputLoadDataset{}, err
	}

	return nil, OutputLoadDataset{
		Path:         result.Path,
		Container:    result.Container,
		Schema:       result.Schema.String(),
		Records:      result.Records,
		TotalRecords: len(result.Records),
	}, nil
}

// DetectSchema reports the schema of a single jsonl line.
func DetectSchema(_ context.Context, _ *mcp.CallToolRequest, input InputDetectSchema) (*mcp.CallToolResult, OutputDetectSchema, error) {
	if strings.TrimSpace(input.Line) == "" {
		return nil, OutputDetectSchema{}, fmt.Errorf("line is required")
	}

	schema, ok := dataset.Detect(input.Line)
	if !ok {
		return nil, OutputDetectSchema{Schema: schema.String()}, nil
	}
	normalized, err := schema.Normalize(input.Line)
	if err != nil {
		return nil, OutputDetectSchema{}, err
	}
	return nil, OutputDetectSchema{
		Schema:     schema.String(),
		Matched:    true,
		Normalized: normalized,
	}, nil
}

func ListFormats(_ context.Context, _ *mcp.CallToolRequest, _ InputListFormats) (*mcp.CallToolResult, OutputListFormats, error) {
	var schemas []string
	for _, s := range dataset.Schemas() {
		schemas = append(schemas, s.String())
	}
	return nil, OutputListFormats{
		Extensions: containers.Default().Extensions(),
		Schemas:    schemas,
	}, nil
}
