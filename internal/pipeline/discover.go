package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
)

// ErrDiscovery marks a failure to enumerate sprite sheets. Unlike per-sheet
// and per-task errors it aborts the whole run.
var ErrDiscovery = errors.New("discovery error")

// Discover expands pattern (slash-separated, "**" allowed) into the regular
// files it matches, drops any path matching one of the ignore globs, and
// returns the rest in natural order so "sheet_2" sorts before "sheet_10".
// Ignore globs are tested against both the full path and the path below
// the pattern's static base directory.
func Discover(pattern string, ignore []string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))

	fi, err := os.Stat(filepath.FromSlash(base))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDiscovery, base)
	}

	var files []string
	err = doublestar.GlobWalk(os.DirFS(filepath.FromSlash(base)), rest, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		full := path.Join(base, p)
		if ignored(ignore, p, full) {
			return nil
		}
		files = append(files, filepath.FromSlash(full))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDiscovery, pattern, err)
	}

	sort.Slice(files, func(i, j int) bool { return natural.Less(files[i], files[j]) })
	return files, nil
}

func ignored(patterns []string, paths ...string) bool {
	for _, pat := range patterns {
		pat = filepath.ToSlash(pat)
		for _, p := range paths {
			if ok, _ := doublestar.Match(pat, p); ok {
				return true
			}
		}
	}
	return false
}
