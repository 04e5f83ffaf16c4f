// The intermediate representation: a parsed program is an ordered sequence of
// functions, one node shape per function kind. Nodes are built by the parser
// and immutable from then on.

package ast

import (
	"strings"

	"charm/source/text"
	"charm/source/token"
	"charm/source/values"
)

type Function interface {
	GetToken() token.Token
	String() string
	functionNode()
}

// What the analyzer found out about a definition at parse time.
type DefinitionInfo struct {
	Inlineable        bool
	TailCallRecursive bool
}

// A numeric literal.
type NumberFunction struct {
	Token token.Token
	Value values.Number
}

func (n *NumberFunction) functionNode() {}
func (n *NumberFunction) GetToken() token.Token { return n.Token }
func (n *NumberFunction) String() string { return n.Value.String() }

// A string literal, already escape-decoded.
type StringFunction struct {
	Token token.Token
	Value string
}

func (s *StringFunction) functionNode() {}
func (s *StringFunction) GetToken() token.Token { return s.Token }
func (s *StringFunction) String() string { return text.Reescape(s.Value) }

// A list literal: a quotation, pushed as a value rather than executed.
type ListFunction struct {
	Token token.Token
	Body  []Function
}

func (l *ListFunction) functionNode() {}
func (l *ListFunction) GetToken() token.Token { return l.Token }
func (l *ListFunction) String() string {
	return "[ " + StringOf(l.Body) + " ]"
}

// A reference to a named function, resolved at run time.
type DefinedFunction struct {
	Token token.Token
	Name  string
}

func (d *DefinedFunction) functionNode() {}
func (d *DefinedFunction) GetToken() token.Token { return d.Token }
func (d *DefinedFunction) String() string { return d.Name }

// A 'name := body' line.
type FunctionDefinition struct {
	Token token.Token
	Name  string
	Body  []Function
	Info  DefinitionInfo
}

func (f *FunctionDefinition) functionNode() {}
func (f *FunctionDefinition) GetToken() token.Token { return f.Token }
func (f *FunctionDefinition) String() string {
	return f.Name + " := " + StringOf(f.Body)
}

// StringOf prettyprints a node sequence the way it would be written.
func StringOf(fns []Function) string {
	strs := make([]string, len(fns))
	for i, f := range fns {
		strs[i] = f.String()
	}
	return strings.Join(strs, " ")
}
