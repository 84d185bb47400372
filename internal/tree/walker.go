package tree

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"
)

const (
	// Branch precedes every printed entry.
	Branch = "|-- "
	// Indent is appended to the prefix for each nesting level.
	Indent = "    "
)

// Walker prints a directory tree and counts what it prints.
// A Walker is not safe for concurrent use.
type Walker struct {
	out     io.Writer
	log     zerolog.Logger
	readDir func(dir string) ([]fs.DirEntry, error)
	counts  Counts
}

// New creates a Walker writing to out and tracing to log.
// Pass zerolog.Nop() to disable tracing.
func New(out io.Writer, log zerolog.Logger) *Walker {
	return &Walker{out: out, log: log, readDir: readDir}
}

// Counts returns the totals of the last Display call.
func (w *Walker) Counts() Counts {
	return w.counts
}

// Display prints root, every non-hidden entry below it, and a summary line.
//
// The root is listed before anything is written, so an unreadable root produces
// no output at all. Failures deeper in the tree abort the walk after the lines
// already written. Filesystem failures are returned as *TraversalError.
func (w *Walker) Display(root string) error {
	w.counts = Counts{}

	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return &TraversalError{Path: root, Err: err}
	}

	entries, err := w.list(abs)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w.out, root); err != nil {
		return err
	}

	if err := w.dive(entries, ""); err != nil {
		return err
	}

	w.log.Debug().
		Int("directories", w.counts.Directories).
		Int("files", w.counts.Files).
		Msg("walk complete")

	_, err = fmt.Fprintf(w.out, "\n%s, %s\n",
		english.Plural(w.counts.Directories, "directory", "directories"),
		english.Plural(w.counts.Files, "file", "files"),
	)

	return err
}

// dive prints the already listed entries of one directory, descending into subdirectories.
func (w *Walker) dive(entries []Entry, prefix string) error {
	for _, entry := range entries {
		switch entry.Kind {
		case KindDirectory:
			w.counts.Directories++

			if _, err := fmt.Fprintf(w.out, "%s%s%s/\n", prefix, Branch, entry.Name); err != nil {
				return err
			}

			children, err := w.list(entry.Path)
			if err != nil {
				return err
			}

			if err := w.dive(children, prefix+Indent); err != nil {
				return err
			}
		case KindSymlink:
			w.counts.Files++

			if _, err := fmt.Fprintf(w.out, "%s%s%s -> %s\n", prefix, Branch, entry.Name, entry.Target); err != nil {
				return err
			}
		default:
			w.counts.Files++

			if _, err := fmt.Fprintf(w.out, "%s%s%s\n", prefix, Branch, entry.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

// readDir lists dir in the order the filesystem returns it.
// The directory handle is released before returning.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// list reads, filters, classifies and sorts the entries of the absolute directory dir.
func (w *Walker) list(dir string) ([]Entry, error) {
	w.log.Debug().Str("dir", dir).Msg("listing directory")

	dirents, err := w.readDir(dir)
	if err != nil {
		return nil, &TraversalError{Path: dir, Err: err}
	}

	entries := make([]Entry, 0, len(dirents))

	for _, d := range dirents {
		if isHidden(d.Name()) {
			w.log.Debug().Str("dir", dir).Str("name", d.Name()).Msg("skipping hidden entry")

			continue
		}

		entry, err := classify(dir, d)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	sortEntries(entries)

	return entries, nil
}
