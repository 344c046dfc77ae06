// Package request parses the three forms a selection request can arrive in:
// a comma-separated list on the command line, a plain list file with names
// separated by newlines, commas, or semicolons, and a declarative HCL
// profile that can also carry the defaults toggle and the output path.
package request
