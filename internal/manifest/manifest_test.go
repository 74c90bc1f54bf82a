// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainset/trainset/internal/manifest"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		errContains string
		wantData    string
		wantSplits  []string
	}{
		{
			name:       "all splits",
			content:    "data: ./data\nsplits:\n  train: train\n  valid: valid\n  test: test\n",
			wantData:   filepath.Join("base", "data"),
			wantSplits: []string{"test", "train", "valid"},
		},
		{
			name:       "unknown top-level keys are tolerated",
			content:    "data: /abs/data\nnotes: fine-tune run 3\nsplits:\n  train: train-v2\n",
			wantData:   "/abs/data",
			wantSplits: []string{"train"},
		},
		{
			name:        "train split is required",
			content:     "data: ./data\nsplits:\n  valid: valid\n",
			wantErr:     true,
			errContains: "invalid manifest",
		},
		{
			name:        "data directory is required",
			content:     "splits:\n  train: train\n",
			wantErr:     true,
			errContains: "invalid manifest",
		},
		{
			name:        "empty split name is rejected",
			content:     "data: ./data\nsplits:\n  train: \"\"\n",
			wantErr:     true,
			errContains: "invalid manifest",
		},
		{
			name:        "data must be a string",
			content:     "data: 5\nsplits:\n  train: train\n",
			wantErr:     true,
			errContains: "invalid manifest",
		},
		{
			name:    "malformed yaml",
			content: "data: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tt.content), "base")
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, m.Data)
			assert.Equal(t, tt.wantSplits, m.SplitNames())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifest.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("data: data\nsplits:\n  train: train\n  valid: dev\n"), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), m.Data)
	assert.Equal(t, map[string]string{"train": "train", "valid": "dev"}, m.Splits)
}

func TestLoad_Missing(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), manifest.DefaultFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}
