package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/symbol"
	"github.com/vk/kconfgo/internal/token"
)

// Parser consumes one file's token stream. Sourced files get their own
// Parser sharing the same table and diagnostic list, so provenance stays
// per-file while the symbol namespace stays global.
type Parser struct {
	tok   *token.Tokenizer
	table *symbol.Table
	diags *diag.List

	// dir is the directory of the file being parsed; `source` paths are
	// resolved against it.
	dir string
}

// ParseFile parses the root Kconfig file into table. A `mainmenu` statement
// is honored only as the very first statement of this root file. The returned
// error is non-nil only when the root or a sourced file cannot be read;
// everything else is reported into diags and parsing continues.
func ParseFile(path string, table *symbol.Table, diags *diag.List) error {
	p, err := newFileParser(path, table, diags)
	if err != nil {
		return err
	}

	tok := p.tok.Next()
	if tok == "mainmenu" {
		table.MainMenu = p.parseString(p.tok.Next())
		p.expectNewline("mainmenu")
	} else {
		p.tok.PushBack(tok)
	}

	return p.parseStatements(nil, false)
}

func newFileParser(path string, table *symbol.Table, diags *diag.List) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kconfig file: %w", err)
	}
	return &Parser{
		tok:   token.New(path, string(data), diags),
		table: table,
		diags: diags,
		dir:   filepath.Dir(path),
	}, nil
}

// parseStatements consumes top-level statements until end of file, or until
// the matching `endmenu` when inMenu is set. menu is the menu new symbols
// and nested menus belong to; nil at the outermost level.
func (p *Parser) parseStatements(menu *symbol.Menu, inMenu bool) error {
	for {
		tok := p.tok.Next()
		switch tok {
		case token.EOF:
			if inMenu {
				p.tok.Errorf("missing 'endmenu' at end of file")
			}
			return nil
		case token.Newline:
			// Blank line.
		case "endmenu":
			if inMenu {
				return nil
			}
			p.tok.Errorf("'endmenu' without a matching 'menu'")
			p.skipLine()
		case "menu":
			if err := p.parseMenu(menu); err != nil {
				return err
			}
		case "source":
			if err := p.parseSource(menu); err != nil {
				return err
			}
		case "config":
			p.parseConfig(menu)
		case "mainmenu":
			p.tok.Errorf("'mainmenu' is only allowed as the first statement of the root file")
			p.skipLine()
		default:
			p.tok.Errorf("unknown statement %q", tok)
			p.skipLine()
		}
	}
}

// parseMenu parses `menu "<title>"` and the statement body through the
// matching `endmenu`.
func (p *Parser) parseMenu(parent *symbol.Menu) error {
	m := &symbol.Menu{Parent: parent}
	m.Prompt = p.parseString(p.tok.Next())
	p.table.AddMenu(m)
	p.expectNewline("menu")
	return p.parseStatements(m, true)
}

// parseSource inlines the named file at this point, sharing the table and
// the current menu context. The path is resolved relative to the directory
// of the file containing the `source` statement.
func (p *Parser) parseSource(menu *symbol.Menu) error {
	path := p.parseString(p.tok.Next())
	p.expectNewline("source")
	if path == "" {
		// Malformed path already diagnosed by parseString.
		return nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}

	sub, err := newFileParser(path, p.table, p.diags)
	if err != nil {
		return fmt.Errorf("sourcing %q: %w", path, err)
	}
	return sub.parseStatements(menu, false)
}

// parseConfig parses `config <NAME>` and the option lines that follow, up to
// the first line that starts a new statement.
func (p *Parser) parseConfig(menu *symbol.Menu) {
	name := p.tok.Next()
	if name == token.Newline || name == token.EOF {
		p.tok.Errorf("'config' without a symbol name")
		return
	}

	sym := p.table.Declare(name, p.tok.FileName(), p.tok.Line())
	if menu != nil && sym.Parent == nil {
		sym.Parent = menu
		menu.AddSymbol(sym)
	}
	p.expectNewline("config " + name)
	p.parseOptions(sym)
}

// skipLine discards tokens through the end of the current line.
func (p *Parser) skipLine() {
	for {
		switch p.tok.Next() {
		case token.Newline, token.EOF:
			return
		}
	}
}

// expectNewline consumes the newline that should terminate the current
// statement. Anything else is diagnosed and pushed back for the outer level;
// end of file is accepted silently.
func (p *Parser) expectNewline(after string) {
	tok := p.tok.Next()
	switch tok {
	case token.Newline:
	case token.EOF:
		p.tok.PushBack(tok)
	default:
		p.tok.Errorf("unexpected token %q after %s (expected a newline)", tok, after)
		p.tok.PushBack(tok)
	}
}

// parseString validates a quoted-string token and returns its contents.
// A token missing either delimiter is diagnosed, pushed back so the outer
// level can reconsider it, and yields the empty string.
func (p *Parser) parseString(s string) string {
	if len(s) == 0 || (s[0] != '\'' && s[0] != '"') {
		p.tok.Errorf("string must start with a quote or an apostrophe")
		p.tok.PushBack(s)
		return ""
	}
	if len(s) < 2 || (s[len(s)-1] != '\'' && s[len(s)-1] != '"') {
		p.tok.Errorf("string must end with a quote or an apostrophe")
		p.tok.PushBack(s)
		return ""
	}
	return strings.Trim(s, `"'`)
}
