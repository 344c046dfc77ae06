// Package diag collects structured, non-fatal diagnostics emitted by the
// parsing, resolution, and selection phases. Nothing in the pipeline prints;
// callers decide how to render the accumulated list.
package diag

import "fmt"

// Diagnostic is a single file-anchored message.
type Diagnostic struct {
	File    string
	Line    int
	Message string
}

// String renders the diagnostic in the conventional "file:line: message" form.
func (d Diagnostic) String() string {
	if d.File == "" {
		return d.Message
	}
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
}

// List accumulates diagnostics in the order they were reported. The zero
// value is ready to use. A single List is shared by every phase of one run.
type List struct {
	diags []Diagnostic
}

// Add appends a diagnostic to the list.
func (l *List) Add(d Diagnostic) {
	l.diags = append(l.diags, d)
}

// Addf appends a diagnostic built from a format string.
func (l *List) Addf(file string, line int, format string, args ...any) {
	l.Add(Diagnostic{File: file, Line: line, Message: fmt.Sprintf(format, args...)})
}

// All returns the accumulated diagnostics in report order.
func (l *List) All() []Diagnostic {
	return l.diags
}

// Len returns the number of accumulated diagnostics.
func (l *List) Len() int {
	return len(l.diags)
}
