package tree

// Counts holds the totals accumulated by a walk.
type Counts struct {
	// Directories is the number of directories printed, excluding the root.
	Directories int
	// Files is the number of non-directory entries printed, symlinks included.
	Files int
}

// Options configures the walk and CLI behavior.
type Options struct {
	// Path is the directory to display.
	Path string
	// Debug indicates whether debug tracing is enabled.
	Debug bool
}

// TraversalError reports a filesystem failure anywhere in the walk.
// The first one encountered aborts the whole listing.
type TraversalError struct {
	// Path is the absolute path that could not be read.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

func (e *TraversalError) Error() string {
	return e.Err.Error()
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}
