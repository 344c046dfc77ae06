// Package resolve holds the two post-parse passes over the symbol table:
// rewriting textual dependency and select references into direct graph links,
// and the single corrective pass that deselects symbols whose hard
// dependencies are unmet.
package resolve
