package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Context bool // include the offending source line with a caret
}
