// Package discovery expands command line arguments into the asciicast
// files to format.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the file extension of asciicast recordings.
const Extension = ".cast"

// Stdin is the argument that stands for standard input.
const Stdin = "-"

// File is one input to format
type File struct {
	// Path is the path as given or as found under a directory argument
	Path string
	// Explicit is true when the path was named on the command line rather
	// than found by walking a directory
	Explicit bool
}

// Finder finds recordings under a directory.
type Finder interface {
	Find(dir string) ([]File, error)
}

// DirectoryFinder walks a directory tree for *.cast files, skipping
// hidden directories.
type DirectoryFinder struct{}

// Find returns the recordings under dir in lexical order
func (f *DirectoryFinder) Find(dir string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Extension {
			files = append(files, File{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", dir, err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// Discoverer expands arguments into files
type Discoverer struct {
	finder Finder
}

// New creates a new Discoverer with the default finder
func New() *Discoverer {
	return &Discoverer{finder: &DirectoryFinder{}}
}

// NewWithFinder creates a new Discoverer with a custom finder
func NewWithFinder(finder Finder) *Discoverer {
	return &Discoverer{finder: finder}
}

// Expand turns arguments into files. Files are kept whatever their
// extension, directories are searched, "-" is passed through, and a
// path is listed once even when named twice.
func (d *Discoverer) Expand(args []string) ([]File, error) {
	var files []File
	seen := make(map[string]bool)
	add := func(f File) {
		key := filepath.Clean(f.Path)
		if f.Path == Stdin {
			key = Stdin
		}
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, f)
	}

	for _, arg := range args {
		if arg == Stdin {
			add(File{Path: Stdin, Explicit: true})
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(File{Path: arg, Explicit: true})
			continue
		}
		found, err := d.finder.Find(arg)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

// RelativePath returns a display-friendly path for a file.
func RelativePath(path string) string {
	if path == Stdin || !filepath.IsAbs(path) {
		return path
	}

	// Try to make relative to current directory
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}

	// Try to make relative to home directory
	if home, err := os.UserHomeDir(); err == nil {
		if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
			return "~/" + rel
		}
	}

	return path
}
