// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Loader resolves data sources to files and reads them with the container
// registered for their extension.
type Loader struct {
	containers []Container
}

// NewLoader creates a Loader with the provided containers. Registration order
// is the extension priority used when resolving a logical name.
func NewLoader(containers ...Container) *Loader {
	return &Loader{containers: containers}
}

// Extensions returns the registered extensions in priority order.
func (l *Loader) Extensions() []string {
	exts := make([]string, len(l.containers))
	for i, c := range l.containers {
		exts[i] = c.Extension()
	}
	return exts
}

// LoadFromDirectory loads the data file for name in dir.
func (l *Loader) LoadFromDirectory(ctx context.Context, dir, name string) ([]string, error) {
	result, err := l.LoadFromDirectoryWithMeta(ctx, dir, name)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// LoadFromDirectoryWithMeta tries name.<ext> for every registered extension in
// priority order and loads the first file that exists. A failure reading that
// file is returned as is; other extensions are not tried.
func (l *Loader) LoadFromDirectoryWithMeta(ctx context.Context, dir, name string) (LoadResult, error) {
	tried := make([]string, 0, len(l.containers))
	for _, ext := range l.Extensions() {
		candidate := name + "." + ext
		tried = append(tried, candidate)

		path := filepath.Join(dir, candidate)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return LoadResult{}, fmt.Errorf("stat %s: %w", path, err)
		}
		return l.LoadFromFileWithMeta(ctx, path)
	}
	return LoadResult{}, &FileNotFoundError{Dir: dir, Name: name, Tried: tried}
}

// LoadFromFile loads the data file at path.
func (l *Loader) LoadFromFile(ctx context.Context, path string) ([]string, error) {
	result, err := l.LoadFromFileWithMeta(ctx, path)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// LoadFromFileWithMeta reads path with the container registered for its
// extension.
func (l *Loader) LoadFromFileWithMeta(ctx context.Context, path string) (LoadResult, error) {
	ext := extension(path)
	container, err := l.selectContainer(ext)
	if err != nil {
		return LoadResult{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	decoded, err := container.Read(ctx, DataFile{Path: path, Ext: ext, Content: content})
	if err != nil {
		return LoadResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return LoadResult{
		Path:      path,
		Container: container.Extension(),
		Schema:    decoded.Schema,
		Records:   decoded.Records,
	}, nil
}

// LoadSplits loads every split from dir concurrently. splits maps a split name
// (train, valid, test) to the logical name of its data file. The first
// failure cancels the remaining loads.
func (l *Loader) LoadSplits(ctx context.Context, dir string, splits map[string]string) (map[string]LoadResult, error) {
	type loaded struct {
		split  string
		result LoadResult
	}

	g, ctx := errgroup.WithContext(ctx)
	out := make(chan loaded, len(splits))
	for split, name := range splits {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := l.LoadFromDirectoryWithMeta(ctx, dir, name)
			if err != nil {
				return fmt.Errorf("split %q: %w", split, err)
			}
			out <- loaded{split: split, result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(out)

	results := make(map[string]LoadResult, len(splits))
	for r := range out {
		results[r.split] = r.result
	}
	return results, nil
}

// selectContainer returns the container registered for ext.
func (l *Loader) selectContainer(ext string) (Container, error) {
	for _, c := range l.containers {
		if strings.EqualFold(c.Extension(), ext) {
			return c, nil
		}
	}
	return nil, &UnsupportedFormatError{Ext: ext}
}

// extension returns the lower-cased extension of path without its leading dot.
func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
