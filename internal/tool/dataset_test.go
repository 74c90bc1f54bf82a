// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainset/trainset/internal/dataset"
)

func TestLoadDataset(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "train.jsonl"),
		[]byte(`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "valid.txt"), []byte("one\n\ntwo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jsonl"), []byte(`{"foo":"bar"}`), 0o644))

	tests := []struct {
		name           string
		input          InputLoadDataset
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputLoadDataset)
	}{
		{
			name:        "missing source returns error",
			input:       InputLoadDataset{},
			wantErr:     true,
			errContains: "path or directory and name are required",
		},
		{
			name:        "directory without name returns error",
			input:       InputLoadDataset{Directory: dir},
			wantErr:     true,
			errContains: "path or directory and name are required",
		},
		{
			name:  "chat jsonl by logical name",
			input: InputLoadDataset{Directory: dir, Name: "train"},
			validateOutput: func(t *testing.T, output OutputLoadDataset) {
				assert.Equal(t, "jsonl", output.Container)
				assert.Equal(t, "chat", output.Schema)
				assert.Equal(t, []string{"user: hi\nassistant: hello"}, output.Records)
				assert.Equal(t, 1, output.TotalRecords)
			},
		},
		{
			name:  "txt by path",
			input: InputLoadDataset{Path: filepath.Join(dir, "valid.txt")},
			validateOutput: func(t *testing.T, output OutputLoadDataset) {
				assert.Equal(t, "txt", output.Container)
				assert.Equal(t, "none", output.Schema)
				assert.Equal(t, []string{"one", "two"}, output.Records)
			},
		},
		{
			name:  "matching expected schema",
			input: InputLoadDataset{Directory: dir, Name: "train", ExpectSchema: "chat"},
			validateOutput: func(t *testing.T, output OutputLoadDataset) {
				assert.Equal(t, "chat", output.Schema)
			},
		},
		{
			name:        "mismatched expected schema returns error",
			input:       InputLoadDataset{Path: filepath.Join(dir, "valid.txt"), ExpectSchema: "text"},
			wantErr:     true,
			errContains: "detected schema none, expected text",
		},
		{
			name:        "unknown logical name returns error",
			input:       InputLoadDataset{Directory: dir, Name: "test"},
			wantErr:     true,
			errContains: "data file not found",
		},
		{
			name:        "unrecognized schema returns error",
			input:       InputLoadDataset{Path: filepath.Join(dir, "bad.jsonl")},
			wantErr:     true,
			errContains: "unrecognized record schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := LoadDataset(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestLoadDataset_TypedErrors(t *testing.T) {
	_, _, err := LoadDataset(context.Background(), &mcp.CallToolRequest{}, InputLoadDataset{Path: "data.parquet"})
	var unsupported *dataset.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "parquet", unsupported.Ext)
}

func TestDetectSchema(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	_, _, err := DetectSchema(ctx, req, InputDetectSchema{Line: "   "})
	require.Error(t, err)

	_, output, err := DetectSchema(ctx, req, InputDetectSchema{Line: `{"prompt":"p","completion":"c"}`})
	require.NoError(t, err)
	assert.True(t, output.Matched)
	assert.Equal(t, "completion", output.Schema)
	assert.Equal(t, "p\n\nc", output.Normalized)

	_, output, err = DetectSchema(ctx, req, InputDetectSchema{Line: `{"foo":"bar"}`})
	require.NoError(t, err)
	assert.False(t, output.Matched)
	assert.Equal(t, "none", output.Schema)
}

func TestListFormats(t *testing.T) {
	_, output, err := ListFormats(context.Background(), &mcp.CallToolRequest{}, InputListFormats{})
	require.NoError(t, err)
	assert.Equal(t, []string{"jsonl", "txt"}, output.Extensions)
	assert.Equal(t, []string{"chat", "tool", "text", "completion"}, output.Schemas)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("test"))
}
