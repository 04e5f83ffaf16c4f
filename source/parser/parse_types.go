package parser

import (
	"strings"

	"charm/source/err"
	"charm/source/signature"
	"charm/source/token"
)

// parseTypeSignature parses a 'name :: pops -> pushes ( | pops -> pushes )*'
// line. The left of the first '::' is the name; the right is one or more
// signature units separated by '|'. Every collected token must be one of the
// fixed type tokens, and '|' may only follow a completed unit.
func (p *Parser) parseTypeSignature(line string, lineNo int) (signature.TypeSignature, *err.Error) {
	colonIndex := strings.Index(line, token.SIGNATURE)
	sig := signature.TypeSignature{FunctionName: strings.TrimSpace(line[:colonIndex])}
	c := &cursor{rest: line[colonIndex+len(token.SIGNATURE):]}
	unit := signature.Unit{}
	inPops := true
	for {
		tok, ok := c.advance()
		if !ok {
			break
		}
		if tok == "" {
			continue
		}
		if inPops {
			switch tok {
			case token.ARROW:
				inPops = false
			case token.ALTERNATE:
				return sig, err.CreateErr("sig/alt", p.makeToken(tok, lineNo))
			default:
				t, known := signature.TypeFromToken(tok)
				if !known {
					return sig, err.CreateErr("sig/type", p.makeToken(tok, lineNo), tok)
				}
				unit.Pops = append(unit.Pops, t)
			}
			continue
		}
		if tok == token.ALTERNATE {
			sig.Units = append(sig.Units, unit)
			unit = signature.Unit{}
			inPops = true
			continue
		}
		t, known := signature.TypeFromToken(tok)
		if !known {
			return sig, err.CreateErr("sig/type", p.makeToken(tok, lineNo), tok)
		}
		unit.Pushes = append(unit.Pushes, t)
	}
	sig.Units = append(sig.Units, unit)
	return sig, nil
}
