package main

import (
	"context"
	"strings"

	"github.com/fwojciec/pageconv"
)

// Compile-time interface verification.
var (
	_ pageconv.Loader       = (*SourceLoader)(nil)
	_ pageconv.SourceLister = (*SourceLister)(nil)
)

// isURL reports whether name is an http(s) URL rather than a file path.
func isURL(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// SourceLoader loads URLs over HTTP and everything else from disk.
type SourceLoader struct {
	files pageconv.Loader
	web   pageconv.Loader
}

// NewSourceLoader creates a new SourceLoader.
func NewSourceLoader(files, web pageconv.Loader) *SourceLoader {
	return &SourceLoader{files: files, web: web}
}

// Load implements pageconv.Loader.
func (s *SourceLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if isURL(name) {
		return s.web.Load(ctx, name)
	}
	return s.files.Load(ctx, name)
}

// SourceLister reads sitemaps for URLs and walks directories otherwise.
type SourceLister struct {
	dirs     pageconv.SourceLister
	sitemaps pageconv.SourceLister
}

// NewSourceLister creates a new SourceLister.
func NewSourceLister(dirs, sitemaps pageconv.SourceLister) *SourceLister {
	return &SourceLister{dirs: dirs, sitemaps: sitemaps}
}

// ListSources implements pageconv.SourceLister.
func (s *SourceLister) ListSources(ctx context.Context, location string) ([]string, error) {
	if isURL(location) {
		return s.sitemaps.ListSources(ctx, location)
	}
	return s.dirs.ListSources(ctx, location)
}
