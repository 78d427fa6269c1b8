package ast

import "io"

// Fprint writes a Program's canonical pretty-print form to w, returning
// the number of bytes written and any write error. It is a thin
// convenience wrapper around Program.String() so callers do not need to
// buffer the whole text themselves before writing it out.
func Fprint(w io.Writer, p *Program) (int, error) {
	return io.WriteString(w, p.String())
}
