package diagfmt

// PrettyOpts controls the human-readable diagnostic renderer.
type PrettyOpts struct {
	// Color enables ANSI severity coloring.
	Color bool
	// Context is the number of source lines shown around the primary span.
	// Zero means only the line containing the span.
	Context int
}
