package request

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/token"
)

// ParseList splits a comma-separated list of symbol names. Blank entries
// are dropped.
func ParseList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// ReadFile reads symbol names from a list file. Names may be separated by
// newlines, commas, or semicolons; blank tokens are skipped. The file is run
// through the same tokenizer as Kconfig input.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selection file: %w", err)
	}

	tk := token.New(path, string(data), &diag.List{})
	var names []string
	for {
		tok := tk.Next()
		switch tok {
		case token.EOF:
			return names, nil
		case token.Newline, ",", ";":
		default:
			names = append(names, tok)
		}
	}
}
