// Package parser implements the recursive-descent grammar over the Kconfig
// token stream. It recognizes the top-level statements (mainmenu, menu,
// config, source) and the option lines inside a config block, building the
// shared symbol table and menu graph as it goes. Malformed constructs are
// reported as diagnostics and skipped; the only fatal failure is being unable
// to open the root file or a sourced file.
package parser
