// Package selection implements the cascade that turns selection requests
// into final symbol state. Selecting a symbol is gated by its dependencies
// and forces a recursive selection attempt on everything it selects. The
// engine keeps an in-progress marker per symbol so that select cycles, which
// the input language cannot rule out, degrade into a diagnostic instead of
// unbounded recursion.
package selection
