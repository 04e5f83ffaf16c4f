package vm

import (
	"fmt"

	"charm/source/ast"
	"charm/source/err"
	"charm/source/values"
)

// A builtin gets the runner and the node that called it; the node's token
// places any error it throws.
type builtin func(r *Runner, d *ast.DefinedFunction) *err.Error

func makeBuiltins() map[string]builtin {
	return map[string]builtin{
		"dup":     bDup,
		"pop":     bPop,
		"swap":    bSwap,
		"i":       bI,
		"ifthen":  bIfthen,
		"+":       bAdd,
		"-":       bSub,
		"*":       bMul,
		"/":       bDiv,
		"=":       bEquals,
		"<":       bLess,
		">":       bGreater,
		"p":       bPrint,
		"pstack":  bPrintStack,
		"newline": bNewline,
		"type":    bType,
		"inline":  bInline,
	}
}

func (r *Runner) pop(d *ast.DefinedFunction) (ast.Function, *err.Error) {
	f, ok := r.stack.Pop()
	if !ok {
		return nil, err.CreateErr("vm/stack/empty", d.Token, d.Name)
	}
	return f, nil
}

func (r *Runner) popNumber(d *ast.DefinedFunction) (values.Number, *err.Error) {
	f, e := r.pop(d)
	if e != nil {
		return values.Number{}, e
	}
	n, ok := f.(*ast.NumberFunction)
	if !ok {
		return values.Number{}, err.CreateErr("vm/number", d.Token, f.String())
	}
	return n.Value, nil
}

func (r *Runner) popString(d *ast.DefinedFunction) (string, *err.Error) {
	f, e := r.pop(d)
	if e != nil {
		return "", e
	}
	s, ok := f.(*ast.StringFunction)
	if !ok {
		return "", err.CreateErr("vm/string", d.Token, f.String())
	}
	return s.Value, nil
}

func (r *Runner) popList(d *ast.DefinedFunction) (*ast.ListFunction, *err.Error) {
	f, e := r.pop(d)
	if e != nil {
		return nil, e
	}
	l, ok := f.(*ast.ListFunction)
	if !ok {
		return nil, err.CreateErr("vm/list", d.Token, f.String())
	}
	return l, nil
}

func (r *Runner) pushNumber(d *ast.DefinedFunction, n values.Number) {
	r.stack.Push(&ast.NumberFunction{Token: d.Token, Value: n})
}

func bDup(r *Runner, d *ast.DefinedFunction) *err.Error {
	f, e := r.pop(d)
	if e != nil {
		return e
	}
	r.stack.Push(f)
	r.stack.Push(f)
	return nil
}

func bPop(r *Runner, d *ast.DefinedFunction) *err.Error {
	_, e := r.pop(d)
	return e
}

func bSwap(r *Runner, d *ast.DefinedFunction) *err.Error {
	b, e := r.pop(d)
	if e != nil {
		return e
	}
	a, e := r.pop(d)
	if e != nil {
		return e
	}
	r.stack.Push(b)
	r.stack.Push(a)
	return nil
}

// i executes the quotation on top of the stack.
func bI(r *Runner, d *ast.DefinedFunction) *err.Error {
	l, e := r.popList(d)
	if e != nil {
		return e
	}
	return r.run(l.Body)
}

// ifthen pops an else-quotation, a then-quotation and a numeric condition, and
// runs the then-quotation iff the condition is nonzero.
func bIfthen(r *Runner, d *ast.DefinedFunction) *err.Error {
	elseQ, e := r.popList(d)
	if e != nil {
		return e
	}
	thenQ, e := r.popList(d)
	if e != nil {
		return e
	}
	cond, e := r.popNumber(d)
	if e != nil {
		return e
	}
	if cond.IsZero() {
		return r.run(elseQ.Body)
	}
	return r.run(thenQ.Body)
}

func (r *Runner) binary(d *ast.DefinedFunction) (values.Number, values.Number, *err.Error) {
	b, e := r.popNumber(d)
	if e != nil {
		return values.Number{}, values.Number{}, e
	}
	a, e := r.popNumber(d)
	if e != nil {
		return values.Number{}, values.Number{}, e
	}
	return a, b, nil
}

func bAdd(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	r.pushNumber(d, a.Add(b))
	return nil
}

func bSub(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	r.pushNumber(d, a.Sub(b))
	return nil
}

func bMul(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	r.pushNumber(d, a.Mul(b))
	return nil
}

func bDiv(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	if b.IsZero() {
		return err.CreateErr("vm/div/zero", d.Token)
	}
	r.pushNumber(d, a.Div(b))
	return nil
}

func boolToNumber(b bool) values.Number {
	if b {
		return values.MakeInt(1)
	}
	return values.MakeInt(0)
}

// = compares two numbers or two strings; anything else is unequal.
func bEquals(r *Runner, d *ast.DefinedFunction) *err.Error {
	b, e := r.pop(d)
	if e != nil {
		return e
	}
	a, e := r.pop(d)
	if e != nil {
		return e
	}
	equal := false
	switch a := a.(type) {
	case *ast.NumberFunction:
		if b, ok := b.(*ast.NumberFunction); ok {
			equal = a.Value.Compare(b.Value) == 0
		}
	case *ast.StringFunction:
		if b, ok := b.(*ast.StringFunction); ok {
			equal = a.Value == b.Value
		}
	}
	r.pushNumber(d, boolToNumber(equal))
	return nil
}

func bLess(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	r.pushNumber(d, boolToNumber(a.Compare(b) < 0))
	return nil
}

func bGreater(r *Runner, d *ast.DefinedFunction) *err.Error {
	a, b, e := r.binary(d)
	if e != nil {
		return e
	}
	r.pushNumber(d, boolToNumber(a.Compare(b) > 0))
	return nil
}

// p pops and prints the top of the stack. Strings print their decoded value,
// everything else prints the way it would be written.
func bPrint(r *Runner, d *ast.DefinedFunction) *err.Error {
	f, e := r.pop(d)
	if e != nil {
		return e
	}
	if s, ok := f.(*ast.StringFunction); ok {
		fmt.Fprint(r.out, s.Value)
		return nil
	}
	fmt.Fprint(r.out, f.String())
	return nil
}

func bPrintStack(r *Runner, d *ast.DefinedFunction) *err.Error {
	fmt.Fprint(r.out, r.stack.Describe())
	return nil
}

func bNewline(r *Runner, d *ast.DefinedFunction) *err.Error {
	fmt.Fprint(r.out, "\n")
	return nil
}

// type pops a value and pushes the name of its type.
func bType(r *Runner, d *ast.DefinedFunction) *err.Error {
	f, e := r.pop(d)
	if e != nil {
		return e
	}
	r.stack.Push(&ast.StringFunction{Token: d.Token, Value: typeOf(f).String()})
	return nil
}

// inline pops a string naming a definition and pushes the body registered for
// it as a quotation. This works even for names with type signatures, which is
// what the inline registry's weaker admission test is for.
func bInline(r *Runner, d *ast.DefinedFunction) *err.Error {
	name, e := r.popString(d)
	if e != nil {
		return e
	}
	if r.fa == nil {
		return err.CreateErr("vm/inline", d.Token, name)
	}
	body, ok := r.fa.InlineBody(name)
	if !ok {
		return err.CreateErr("vm/inline", d.Token, name)
	}
	r.stack.Push(&ast.ListFunction{Token: d.Token, Body: body})
	return nil
}
