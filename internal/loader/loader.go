package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/strfile"
)

// offensivePatterns mark a path as adults-only: anything inside an
// off/ directory or any file with the -o suffix.
var offensivePatterns = []string{"**/off/*", "**/*-o"}

// Loader resolves location strings into cookie sources from the
// filesystem or the embedded bundle.
type Loader struct {
	bundle fs.FS
}

// Resolve expands a location into sources. An "embed:" prefix selects
// the embedded bundle; otherwise the location must be an existing file
// or directory. Directories expand recursively, skipping index files
// and dotfiles; the normal/offensive flags select which files a
// directory or bundle expansion keeps.
func (l *Loader) Resolve(location string, normal, offensive bool) ([]cookie.Source, error) {
	if rest, ok := strings.CutPrefix(location, EmbedPrefix); ok {
		return l.resolveEmbedded(rest, normal, offensive)
	}

	info, err := os.Stat(location)
	if err != nil {
		return nil, errors.NewNotFound(location)
	}
	if !info.IsDir() {
		b, err := os.ReadFile(location)
		if err != nil {
			return nil, errors.NewIO(location, err)
		}
		return []cookie.Source{{Label: location, Text: string(b)}}, nil
	}
	return l.resolveDir(location, normal, offensive)
}

func (l *Loader) resolveDir(dir string, normal, offensive bool) ([]cookie.Source, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.NewIO(dir, err)
	}
	sort.Strings(matches)

	var sources []cookie.Source
	for _, rel := range matches {
		if !keepPath(rel, normal, offensive) {
			continue
		}
		b, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, errors.NewIO(filepath.Join(dir, rel), err)
		}
		sources = append(sources, cookie.Source{
			Label: filepath.Join(dir, rel),
			Text:  string(b),
		})
	}
	if len(sources) == 0 {
		return nil, errors.NewNotFound(dir)
	}
	return sources, nil
}

// keepPath decides whether an expanded path survives the skip rules
// and the normal/offensive selection.
func keepPath(rel string, normal, offensive bool) bool {
	if strings.HasSuffix(rel, strfile.Extension) {
		return false
	}
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") {
			return false
		}
	}
	for _, pattern := range offensivePatterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return offensive
		}
	}
	return normal
}

// Exists reports whether a location resolves to anything at all,
// without reading it.
func (l *Loader) Exists(location string) bool {
	if rest, ok := strings.CutPrefix(location, EmbedPrefix); ok {
		if rest == "" {
			return true
		}
		_, err := fs.Stat(l.bundle, rest)
		return err == nil
	}
	_, err := os.Stat(location)
	return err == nil
}
