// Package fs provides file-based loading, listing and export of documents.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/pageconv"
)

// Ensure Loader implements pageconv.Loader at compile time.
var _ pageconv.Loader = (*Loader)(nil)

// Loader reads source documents from the local filesystem.
type Loader struct {
	maxSize int64
}

// NewLoader creates a new Loader that rejects files larger than
// pageconv.MaxDocumentSize.
func NewLoader() *Loader {
	return &Loader{maxSize: pageconv.MaxDocumentSize}
}

// Load reads the file at path.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pageconv.Errorf(pageconv.ENOTFOUND, "%s does not exist", path)
	} else if err != nil {
		return nil, pageconv.Errorf(pageconv.EUNREADABLE, "%s: %v", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, pageconv.Errorf(pageconv.EUNREADABLE, "%s: %v", path, err)
	}
	if info.IsDir() {
		return nil, pageconv.Errorf(pageconv.EINVALID, "%s is a directory", path)
	}
	if info.Size() > l.maxSize {
		return nil, pageconv.Errorf(pageconv.EINVALID, "%s exceeds %d bytes", path, l.maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, l.maxSize))
	if err != nil {
		return nil, pageconv.Errorf(pageconv.EUNREADABLE, "%s: %v", path, err)
	}
	return data, nil
}

// Ensure DirLister implements pageconv.SourceLister at compile time.
var _ pageconv.SourceLister = (*DirLister)(nil)

// DirLister lists the HTML files under a directory.
type DirLister struct{}

// NewDirLister creates a new DirLister.
func NewDirLister() *DirLister {
	return &DirLister{}
}

// ListSources returns every .html and .htm file under dir, recursively, in
// lexical order. Hidden files and directories are skipped.
func (d *DirLister) ListSources(ctx context.Context, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pageconv.Errorf(pageconv.ENOTFOUND, "%s does not exist", dir)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, pageconv.Errorf(pageconv.EINVALID, "%s is not a directory", dir)
	}

	paths := []string{}
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.IsDir() && IsHTMLFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// IsHTMLFile reports whether path has an HTML file extension.
func IsHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
