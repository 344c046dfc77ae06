// Package symbol holds the in-memory model built by the parser: typed
// configuration symbols, the menus that group them, and the table that owns
// both. Edges start out as textual names and are rewritten into direct links
// by the resolve package; the table preserves insertion order so every
// downstream pass and the final output are deterministic.
package symbol
