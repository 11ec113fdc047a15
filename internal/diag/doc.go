// Package diag defines the diagnostic model shared by the lexer and driver.
//
// Diagnostics are data, never control flow: the lexer reports findings
// through a Reporter and keeps scanning; the driver and CLI decide what a
// finding means for the process (exit code in batch mode, nothing in the
// REPL). Rendering lives in internal/diagfmt.
//
// Diagnostic is the central record: Severity, a stable numeric Code,
// a short message, the primary source.Span, and optional Notes that add
// secondary context (e.g. "string starts here"). Bag accumulates
// diagnostics with a cap and supports sorting and deduplication for
// deterministic output.
package diag
