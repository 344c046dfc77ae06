// Package app wires the pipeline together: parse the Kconfig tree, resolve
// references, fix up dependencies, apply the requested selections, and write
// the output file. The CLI layer builds a Config and calls Run; tests drive
// Run directly and assert on the returned Result.
package app
