package parser

import (
	"strings"

	"charm/source/ast"
	"charm/source/err"
	"charm/source/settings"
	"charm/source/token"
	"charm/source/values"
)

// The parser turns a source text into a list of function nodes, one line at a
// time. It owns the function analyzer and a cache of what the analyzer said
// about each definition; both live as long as the session does, accumulating
// state as definitions and type signatures are parsed.
type Parser struct {
	fa                  *FunctionAnalyzer
	definitionInfoCache map[string]ast.DefinitionInfo
	source              string
}

func New(source string) *Parser {
	return &Parser{
		fa:                  NewFunctionAnalyzer(),
		definitionInfoCache: map[string]ast.DefinitionInfo{},
		source:              source,
	}
}

// Lex parses a whole input text. It returns the parsed functions together with
// a handle to the parser's analyzer, which the caller may query but must not
// mutate. The first parse error is fatal: no partial result is returned.
func (p *Parser) Lex(input string) ([]ast.Function, *FunctionAnalyzer, error) {
	out, e := p.lexAskToInline(input, true, 1)
	if e != nil {
		return nil, p.fa, e
	}
	if settings.SHOW_PARSER {
		println("parsed: " + ast.StringOf(out))
	}
	return out, p.fa, nil
}

// Analyzer exposes the handle on its own, for collaborators that want to
// complete names or inspect signatures without parsing anything.
func (p *Parser) Analyzer() *FunctionAnalyzer {
	return p.fa
}

// The willInline flag disables call-site inlining: list bodies are parsed with
// it off, because a quotation's body stays quoted until the runner consumes it.
func (p *Parser) lexAskToInline(input string, willInline bool, startLine int) ([]ast.Function, *err.Error) {
	out := []ast.Function{}
	for i, line := range strings.Split(input, "\n") {
		lineNo := startLine + i
		switch {
		case isDefinitionLine(line):
			def, e := p.parseDefinition(line, lineNo)
			if e != nil {
				return nil, e
			}
			out = append(out, def)
		case isSignatureLine(line):
			sig, e := p.parseTypeSignature(line, lineNo)
			if e != nil {
				return nil, e
			}
			p.fa.AddTypeSignature(sig)
		default:
			if e := p.parseExpressionLine(&out, line, lineNo, willInline); e != nil {
				return nil, e
			}
		}
	}
	return out, nil
}

// A cursor over the unconsumed remainder of a line. Splitting on single spaces
// means runs of spaces yield empty tokens; whether those are skipped or kept is
// up to each consumer, and the string parser wants them kept.
type cursor struct {
	rest string
}

func (c *cursor) advance() (string, bool) {
	if c.rest == "" {
		return "", false
	}
	if i := strings.IndexByte(c.rest, ' '); i >= 0 {
		tok := c.rest[:i]
		c.rest = c.rest[i+1:]
		return tok, true
	}
	tok := c.rest
	c.rest = ""
	return tok, true
}

// A line is a definition line iff ':=' occurs as a free-standing token at list
// depth zero and outside a string. The signature test is the same with '::'.
func isDefinitionLine(line string) bool {
	return hasTokenAtDepthZero(line, token.DEFINE)
}

func isSignatureLine(line string) bool {
	return hasTokenAtDepthZero(line, token.SIGNATURE)
}

func hasTokenAtDepthZero(line string, wanted string) bool {
	listDepth := 0
	inString := false
	for _, f := range strings.Split(line, " ") {
		switch {
		case token.KindOf(f) == token.LIST:
			listDepth++
		case f == token.RBRACK:
			listDepth--
		case token.KindOf(f) == token.STRING:
			inString = !inString
		}
		if listDepth == 0 && !inString && f == wanted {
			return true
		}
	}
	return false
}

func (p *Parser) parseExpressionLine(out *[]ast.Function, line string, lineNo int, willInline bool) *err.Error {
	c := &cursor{rest: line}
	for {
		tok, ok := c.advance()
		if !ok {
			break
		}
		if tok == "" {
			continue
		}
		if e := p.delegateParsing(out, tok, c, lineNo, willInline); e != nil {
			return e
		}
	}
	return nil
}

func (p *Parser) delegateParsing(out *[]ast.Function, tok string, c *cursor, lineNo int, willInline bool) *err.Error {
	switch token.KindOf(tok) {
	case token.DEFINED:
		fn := &ast.DefinedFunction{Token: p.makeToken(tok, lineNo), Name: tok}
		// Only inline if the cached info says we can, not just if a body is
		// registered: a definition with a type signature keeps its body in the
		// inline registry for the 'inline' builtin, but its call sites stay put.
		if settings.OPTIMIZE_INLINE && willInline {
			if info, found := p.definitionInfoCache[fn.Name]; found && info.Inlineable {
				if p.fa.DoInline(out, fn) {
					return nil
				}
			}
		}
		*out = append(*out, fn)
	case token.NUMBER:
		num, ok := values.MakeNumber(tok)
		if !ok {
			return err.CreateErr("num/parse", p.makeToken(tok, lineNo))
		}
		*out = append(*out, &ast.NumberFunction{Token: p.makeToken(tok, lineNo), Value: num})
	case token.STRING:
		s, e := p.parseString(c, lineNo)
		if e != nil {
			return e
		}
		*out = append(*out, &ast.StringFunction{Token: p.makeToken(token.QUOTE, lineNo), Value: s})
	case token.LIST:
		body, e := p.parseList(c, lineNo)
		if e != nil {
			return e
		}
		*out = append(*out, &ast.ListFunction{Token: p.makeToken(token.LBRACK, lineNo), Body: body})
	case token.DEFINITION:
		// The line classifier routes a free-standing ':=' at depth zero to
		// parseDefinition; one that follows an unmatched ']' (depth below zero)
		// ends up here and is treated as a name.
		*out = append(*out, &ast.DefinedFunction{Token: p.makeToken(tok, lineNo), Name: tok})
	}
	return nil
}

// A string continues until a free-standing closing quote. Escapes are applied
// to each token separately and the tokens are joined by single spaces, so an
// escape can't span tokens, and runs of spaces inside the string survive as
// the empty tokens between them.
func (p *Parser) parseString(c *cursor, lineNo int) (string, *err.Error) {
	var outS strings.Builder
	endQuoted := false
	for {
		tok, ok := c.advance()
		if !ok {
			break
		}
		if tok == token.QUOTE {
			endQuoted = true
			break
		}
		outS.WriteString(escapeToken(tok))
		outS.WriteByte(' ')
	}
	if !endQuoted {
		return "", err.CreateErr("parse/quote", p.makeToken(token.QUOTE, lineNo))
	}
	s := outS.String()
	// A non-empty string has picked up a final separator space that isn't part
	// of it.
	if len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s, nil
}

// The escape table: \n, \t, \", \0 and \\. A backslash that ends the token, or
// one starting an unknown escape, is left intact.
func escapeToken(tok string) string {
	var out strings.Builder
	for i := 0; i < len(tok); i++ {
		ch := tok[i]
		if ch == '\\' && i < len(tok)-1 {
			switch tok[i+1] {
			case 'n':
				out.WriteByte('\n')
				i++
				continue
			case 't':
				out.WriteByte('\t')
				i++
				continue
			case '"':
				out.WriteByte('"')
				i++
				continue
			case '0':
				out.WriteByte(0)
				i++
				continue
			case '\\':
				out.WriteByte('\\')
				i++
				continue
			}
		}
		out.WriteByte(ch)
	}
	return out.String()
}

// A list continues until the ']' that brings the nesting depth back to zero.
// The interior tokens are accumulated and re-lexed as if they were a fresh
// source, with inlining off: the body remains a quotation.
func (p *Parser) parseList(c *cursor, lineNo int) ([]ast.Function, *err.Error) {
	var outS strings.Builder
	listDepth := 1
	for {
		tok, ok := c.advance()
		if !ok {
			break
		}
		if token.KindOf(tok) == token.LIST {
			listDepth++
		} else if tok == token.RBRACK {
			listDepth--
			if listDepth <= 0 {
				break
			}
		}
		outS.WriteString(tok)
		outS.WriteByte(' ')
	}
	if listDepth > 0 {
		return nil, err.CreateErr("parse/bracket", p.makeToken(token.LBRACK, lineNo))
	}
	return p.lexAskToInline(outS.String(), false, lineNo)
}

// parseDefinition splits on the first ':=' in the raw line: the trimmed left
// side is the name, the right side is re-lexed as the body. The definition is
// analyzed on the spot and the verdict cached under its name for call sites.
func (p *Parser) parseDefinition(line string, lineNo int) (*ast.FunctionDefinition, *err.Error) {
	equalsIndex := strings.Index(line, token.DEFINE)
	name := strings.TrimSpace(line[:equalsIndex])
	// Forget the previous verdict first, so that a self-call in the new body
	// is not expanded with a stale inline body.
	delete(p.definitionInfoCache, name)
	body, e := p.lexAskToInline(line[equalsIndex+len(token.DEFINE):], true, lineNo)
	if e != nil {
		return nil, e
	}
	def := &ast.FunctionDefinition{Token: p.makeToken(name, lineNo), Name: name, Body: body}
	def.Info = p.analyzeDefinition(def)
	p.definitionInfoCache[name] = def.Info
	return def, nil
}

func (p *Parser) analyzeDefinition(def *ast.FunctionDefinition) ast.DefinitionInfo {
	info := ast.DefinitionInfo{}
	info.Inlineable = p.fa.IsInlinable(def)
	// The inline registry uses the weaker test, so that a type-signed
	// definition can still be reached by the 'inline' builtin. The registry
	// always reflects the latest definition of the name.
	if p.fa.IsInlinableIgnoringTypeSignature(def) {
		p.fa.AddToInlineDefinitions(def)
	} else {
		p.fa.RemoveFromInlineDefinitions(def.Name)
	}
	info.TailCallRecursive = p.fa.IsTailCallRecursive(def)
	return info
}

func (p *Parser) makeToken(literal string, lineNo int) token.Token {
	return token.Token{Literal: literal, Line: lineNo, Source: p.source}
}
