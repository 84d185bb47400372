package tree

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Kind classifies a directory entry.
type Kind int

const (
	// KindOther is a regular file or any type that is neither a directory nor a symlink.
	KindOther Kind = iota
	// KindDirectory is a directory, descended into.
	KindDirectory
	// KindSymlink is a symbolic link, printed with its target and never followed.
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is a single listed name inside a directory.
type Entry struct {
	// Name is the base name as returned by the listing.
	Name string
	// Path is the absolute path of the entry.
	Path string
	// Kind is the entry classification.
	Kind Kind
	// Target is the raw link value, set for symlinks only.
	Target string
}

//nolint:gochecknoglobals // Compiled once
var nonAlphanumeric = regexp.MustCompile(`[^0-9a-zA-Z]`)

// SortKey strips every character that is not an ASCII letter or digit and lowercases the rest.
func SortKey(name string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(name, ""))
}

// isHidden reports whether the name starts with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// classify builds an Entry for d inside dir.
// The listing reports symlinks as their own type, so a link to a directory stays a symlink.
//
//nolint:varnamelen // d is standard for DirEntry
func classify(dir string, d fs.DirEntry) (Entry, error) {
	entry := Entry{
		Name: d.Name(),
		Path: filepath.Join(dir, d.Name()),
	}

	switch typ := d.Type(); {
	case typ.IsDir():
		entry.Kind = KindDirectory
	case typ&fs.ModeSymlink != 0:
		target, err := os.Readlink(entry.Path)
		if err != nil {
			return Entry{}, &TraversalError{Path: entry.Path, Err: err}
		}

		entry.Kind = KindSymlink
		entry.Target = target
	default:
		entry.Kind = KindOther
	}

	return entry, nil
}

// sortEntries orders entries by SortKey. Equal keys keep their listing order.
func sortEntries(entries []Entry) {
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		keys[e.Name] = SortKey(e.Name)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(keys[a.Name], keys[b.Name])
	})
}
