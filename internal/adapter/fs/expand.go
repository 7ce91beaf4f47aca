package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Expander resolves command-line path arguments. Arguments that exist are
// kept as-is; arguments that do not exist but look like glob patterns are
// expanded. Everything else is passed through so the reader reports it.
type Expander struct {
	fs afero.Fs
}

func NewExpander(fsys afero.Fs) *Expander {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Expander{fs: fsys}
}

// Expand returns the concrete paths for args, preserving argument order.
func (e *Expander) Expand(args []string) []string {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if _, err := e.fs.Stat(arg); err == nil || !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}

		matches := e.glob(arg)
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}

func (e *Expander) glob(pattern string) []string {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))

	fsys := e.fs
	if base != "." {
		fsys = afero.NewBasePathFs(e.fs, filepath.FromSlash(base))
	}

	var matches []string
	err := doublestar.GlobWalk(afero.NewIOFS(fsys), rest, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		if base == "." {
			matches = append(matches, filepath.FromSlash(path))
		} else {
			matches = append(matches, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(path)))
		}
		return nil
	})
	if err != nil {
		return nil
	}

	sort.Strings(matches)
	return matches
}

func hasMeta(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
