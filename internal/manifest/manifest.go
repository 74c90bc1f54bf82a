// SPDX-License-Identifier: Apache-2.0

// Package manifest reads trainset.yaml files describing where a data set lives
// and which logical names make up its splits.
package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/goccy/go-yaml"
)

// DefaultFile is the manifest file name looked up in a data-set directory.
const DefaultFile = "trainset.yaml"

//go:embed schema.cue
var schemaSource string

// Manifest describes a data set on disk.
type Manifest struct {
	// Data is the directory holding the split files. After Load or Parse it
	// is resolved against the manifest's directory.
	Data string `yaml:"data"`
	// Splits maps a split name (train, valid, test) to a logical file name.
	Splits map[string]string `yaml:"splits"`
}

// SplitNames returns the split names in sorted order.
func (m *Manifest) SplitNames() []string {
	names := make([]string, 0, len(m.Splits))
	for name := range m.Splits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(content, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse validates content against the manifest schema and decodes it. A
// relative data directory is resolved against baseDir.
func Parse(content []byte, baseDir string) (*Manifest, error) {
	if err := validate(content); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if !filepath.IsAbs(m.Data) && baseDir != "" {
		m.Data = filepath.Join(baseDir, m.Data)
	}
	return &m, nil
}

// validate checks the YAML document against the embedded CUE schema.
func validate(content []byte) error {
	doc, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("failed to convert manifest to JSON: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile manifest schema: %w", err)
	}
	value := ctx.CompileBytes(doc, cue.Filename(DefaultFile))
	if err := value.Err(); err != nil {
		return fmt.Errorf("invalid manifest: %s", cueerrors.Details(err, nil))
	}
	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid manifest: %s", cueerrors.Details(err, nil))
	}
	return nil
}
