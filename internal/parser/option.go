package parser

import (
	"github.com/vk/kconfgo/internal/symbol"
	"github.com/vk/kconfgo/internal/token"
)

// parseOptions consumes the option lines of a config block. The block ends
// at end of file, at a line starting with `config` or `endmenu`, or at any
// token that is not an option keyword; terminators are pushed back for the
// outer statement loop.
func (p *Parser) parseOptions(sym *symbol.Symbol) {
	for {
		tok := p.tok.Next()
		switch tok {
		case token.EOF:
			return
		case token.Newline:
			// Blank line inside the block.
		case "config", "endmenu":
			p.tok.PushBack(tok)
			return
		case "bool":
			p.parseKind(sym, symbol.KindBool)
		case "tristate":
			p.parseKind(sym, symbol.KindTristate)
		case "string":
			p.parseKind(sym, symbol.KindString)
		case "prompt":
			sym.Prompt = p.parseString(p.tok.Next())
		case "default":
			p.parseDefault(sym)
		case "depends":
			p.parseDependsOn(sym)
		case "select":
			p.parseSelect(sym)
		case "help", "--help--":
			// Free-form help text is not retained.
			p.skipLine()
		default:
			p.tok.PushBack(tok)
			return
		}
	}
}

// parseKind handles `bool`/`tristate`/`string`, optionally followed by a
// quoted prompt on the same line. The last kind written wins.
func (p *Parser) parseKind(sym *symbol.Symbol, kind symbol.Kind) {
	tok := p.tok.Next()
	if len(tok) > 0 && (tok[0] == '\'' || tok[0] == '"') {
		sym.SetKind(kind, p.parseString(tok))
		return
	}
	p.tok.PushBack(tok)
	sym.SetKind(kind, "")
}

// parseDefault handles `default y` and `default n`. Only `y` marks the
// symbol; `n` is the explicit negative and leaves the flag untouched.
func (p *Parser) parseDefault(sym *symbol.Symbol) {
	switch tok := p.tok.Next(); tok {
	case "y":
		sym.IsDefault = true
	case "n":
	default:
		p.tok.Errorf("'default' takes 'y' or 'n', got %q", tok)
	}
}

// parseDependsOn handles `depends on <NAME>`.
func (p *Parser) parseDependsOn(sym *symbol.Symbol) {
	if tok := p.tok.Next(); tok != "on" {
		p.tok.Errorf("unexpected token %q after 'depends'", tok)
		return
	}
	name := p.tok.Next()
	if name == token.Newline || name == token.EOF {
		p.tok.Errorf("missing symbol name after 'depends on'")
		return
	}
	sym.AddDependency(name)
}

// parseSelect handles `select <NAME>`.
func (p *Parser) parseSelect(sym *symbol.Symbol) {
	name := p.tok.Next()
	if name == token.Newline || name == token.EOF {
		p.tok.Errorf("missing symbol name after 'select'")
		return
	}
	sym.AddSelect(name)
}
