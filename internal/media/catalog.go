package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInvalidInput marks fatal precondition failures such as a missing or
// non-directory scan root. Callers abort the whole run on it.
var ErrInvalidInput = errors.New("invalid input")

// Discover scans root for supported media files and returns them sorted
// lexicographically by path so processing order is stable across runs.
// When recursive is false only the top level is scanned. A non-empty
// extensions list restricts results further; entries are matched
// case-insensitively and the leading dot is optional.
func Discover(root string, recursive bool, extensions []string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidInput, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidInput, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %v", ErrInvalidInput, root, err)
	}

	filter := normalizeExtensions(extensions)

	var files []File
	collect := func(path string) {
		mediaType, ok := Classify(path)
		if !ok {
			return
		}
		if filter != nil && !filter[strings.ToLower(filepath.Ext(path))] {
			return
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		files = append(files, File{Path: path, RelPath: rel, Type: mediaType})
	}

	if recursive {
		err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				collect(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(absRoot)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				collect(filepath.Join(absRoot, entry.Name()))
			}
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// normalizeExtensions lowercases entries and ensures a leading dot.
// Returns nil when the list is empty, meaning no extra filtering.
func normalizeExtensions(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
