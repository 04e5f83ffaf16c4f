package parser

import (
	"charm/source/ast"
	"charm/source/dtypes"
	"charm/source/signature"
)

// The function analyzer owns the registries that accumulate over a session:
// which definitions have inlineable bodies, and which names have declared type
// signatures. The parser mutates it on definition and signature lines; all
// other access is read-only.
type FunctionAnalyzer struct {
	inlineDefinitions map[string][]ast.Function
	typeSignatures    map[string]signature.TypeSignature
}

func NewFunctionAnalyzer() *FunctionAnalyzer {
	return &FunctionAnalyzer{
		inlineDefinitions: map[string][]ast.Function{},
		typeSignatures:    map[string]signature.TypeSignature{},
	}
}

func (fa *FunctionAnalyzer) AddTypeSignature(sig signature.TypeSignature) {
	fa.typeSignatures[sig.FunctionName] = sig
}

func (fa *FunctionAnalyzer) GetTypeSignature(name string) (signature.TypeSignature, bool) {
	sig, ok := fa.typeSignatures[name]
	return sig, ok
}

// IsInlinable says whether call sites of the definition may be replaced by its
// body: the body must not call the definition, even inside a quotation, and no
// type signature may be registered for the name. The second clause keeps
// type-checked functions out of unconditional inlining even when their bodies
// are structurally trivial.
func (fa *FunctionAnalyzer) IsInlinable(def *ast.FunctionDefinition) bool {
	if _, hasSignature := fa.typeSignatures[def.Name]; hasSignature {
		return false
	}
	return fa.IsInlinableIgnoringTypeSignature(def)
}

// IsInlinableIgnoringTypeSignature applies only the structural test. It decides
// registration in the inline registry, where a type-signed body must still
// appear so that the 'inline' builtin can get at it.
func (fa *FunctionAnalyzer) IsInlinableIgnoringTypeSignature(def *ast.FunctionDefinition) bool {
	return !callsName(def.Body, def.Name)
}

func callsName(body []ast.Function, name string) bool {
	for _, f := range body {
		switch f := f.(type) {
		case *ast.DefinedFunction:
			if f.Name == name {
				return true
			}
		case *ast.ListFunction:
			if callsName(f.Body, name) {
				return true
			}
		case *ast.FunctionDefinition:
			if callsName(f.Body, name) {
				return true
			}
		}
	}
	return false
}

func (fa *FunctionAnalyzer) AddToInlineDefinitions(def *ast.FunctionDefinition) {
	fa.inlineDefinitions[def.Name] = def.Body
}

// RemoveFromInlineDefinitions keeps the registry honest on redefinition: a name
// is registered iff its latest definition passes the structural test.
func (fa *FunctionAnalyzer) RemoveFromInlineDefinitions(name string) {
	delete(fa.inlineDefinitions, name)
}

// IsTailCallRecursive is true iff the last node of the body calls the
// definition and no earlier node does. A self-call anywhere but last
// disqualifies; self-calls inside quotations don't count as calls.
func (fa *FunctionAnalyzer) IsTailCallRecursive(def *ast.FunctionDefinition) bool {
	if len(def.Body) == 0 {
		return false
	}
	last, ok := def.Body[len(def.Body)-1].(*ast.DefinedFunction)
	if !ok || last.Name != def.Name {
		return false
	}
	for _, f := range def.Body[:len(def.Body)-1] {
		if d, ok := f.(*ast.DefinedFunction); ok && d.Name == def.Name {
			return false
		}
	}
	return true
}

// DoInline appends the registered body of the called name to out, reporting
// whether there was one. The nodes are immutable, so sharing them between call
// sites is as good as copying.
func (fa *FunctionAnalyzer) DoInline(out *[]ast.Function, call *ast.DefinedFunction) bool {
	body, ok := fa.inlineDefinitions[call.Name]
	if !ok {
		return false
	}
	*out = append(*out, body...)
	return true
}

// InlineBody is the access path for the 'inline' builtin.
func (fa *FunctionAnalyzer) InlineBody(name string) ([]ast.Function, bool) {
	body, ok := fa.inlineDefinitions[name]
	return body, ok
}

// KnownFunctions returns every name in the inline and signature registries, for
// completion. A definition that calls itself and has no signature is not among
// them.
func (fa *FunctionAnalyzer) KnownFunctions() dtypes.Set[string] {
	names := dtypes.Set[string]{}
	for name := range fa.inlineDefinitions {
		names.Add(name)
	}
	for name := range fa.typeSignatures {
		names.Add(name)
	}
	return names
}
