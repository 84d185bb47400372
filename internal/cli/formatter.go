package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// newOutput returns the writer the tree is printed to and a function flushing it.
// Terminals get every line as it is produced; pipes and files are buffered.
func newOutput(writer io.Writer) (io.Writer, func() error) {
	f, ok := writer.(*os.File)
	if !ok || isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return writer, func() error { return nil }
	}

	buffered := bufio.NewWriter(f)

	return buffered, buffered.Flush
}

// PrintError outputs a traversal failure as a single "[error]: " line.
func PrintError(err error, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "[error]: %s\n", err); err != nil {
		return err
	}

	return nil
}
