// Package output serializes the final selection state into the flat
// .config-style format: a title header followed by one CONFIG_<NAME>=y line
// per selected symbol, in declaration order.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vk/kconfgo/internal/symbol"
)

// Write emits the selected symbols of table to w. Output is a pure function
// of the table contents, so identical runs produce byte-identical files.
func Write(w io.Writer, table *symbol.Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Configuration '%s'\n\n", table.MainMenu)
	for _, sym := range table.Symbols() {
		if sym.IsSelected {
			fmt.Fprintf(bw, "CONFIG_%s=y\n", sym.Name)
		}
	}
	return bw.Flush()
}

// WriteFile writes the selection state to the named file, creating or
// truncating it.
func WriteFile(path string, table *symbol.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := Write(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
