package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/tree/internal/logging"
	"github.com/idelchi/tree/internal/tree"
)

func (c CLI) logic(cmd *cobra.Command, options tree.Options) error {
	log := logging.New(cmd.ErrOrStderr(), options.Debug)

	log.Debug().
		Str("version", c.version).
		Str("path", options.Path).
		Msg("starting")

	out, flush := newOutput(cmd.OutOrStdout())

	err := tree.New(out, log).Display(options.Path)

	// Traversal failures are reported on stdout and leave the exit code at 0.
	var traversalErr *tree.TraversalError
	if errors.As(err, &traversalErr) {
		log.Debug().Str("path", traversalErr.Path).Msg("traversal failed")

		err = PrintError(traversalErr, out)
	}

	if flushErr := flush(); err == nil {
		err = flushErr
	}

	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
