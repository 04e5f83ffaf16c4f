package vm

import (
	"io"

	"charm/source/ast"
	"charm/source/dtypes"
	"charm/source/err"
	"charm/source/parser"
	"charm/source/settings"
	"charm/source/signature"
	"charm/source/values"

	"src.elv.sh/pkg/persistent/vector"
)

// The runner is the evaluation loop: it consumes a parsed function list and
// mutates the operand stack. Numbers, strings and quotations push themselves;
// definitions register themselves; names resolve against the builtins first
// and the user's definitions second.
type Runner struct {
	stack               *Stack
	functionDefinitions map[string]*ast.FunctionDefinition
	builtins            map[string]builtin
	fa                  *parser.FunctionAnalyzer
	out                 io.Writer
	trace               *dtypes.Stack[string]
}

func NewRunner(out io.Writer) *Runner {
	r := &Runner{
		stack:               newStack(),
		functionDefinitions: map[string]*ast.FunctionDefinition{},
		out:                 out,
		trace:               dtypes.NewStack[string](),
	}
	r.builtins = makeBuiltins()
	return r
}

// Run executes a parsed program against the analyzer handle that came back
// from the same parse. The trace of calls in flight is cleared first, so that
// after an error it describes only the failed run.
func (r *Runner) Run(fns []ast.Function, fa *parser.FunctionAnalyzer) error {
	r.fa = fa
	r.trace = dtypes.NewStack[string]()
	if e := r.run(fns); e != nil {
		return e
	}
	return nil
}

func (r *Runner) run(fns []ast.Function) *err.Error {
	for _, f := range fns {
		if e := r.execute(f); e != nil {
			return e
		}
	}
	return nil
}

func (r *Runner) execute(f ast.Function) *err.Error {
	if settings.SHOW_RUNTIME {
		println("executing: " + f.String())
	}
	switch f := f.(type) {
	case *ast.NumberFunction, *ast.StringFunction, *ast.ListFunction:
		r.stack.Push(f)
	case *ast.FunctionDefinition:
		r.functionDefinitions[f.Name] = f
	case *ast.DefinedFunction:
		return r.call(f)
	}
	return nil
}

func (r *Runner) call(d *ast.DefinedFunction) *err.Error {
	if b, ok := r.builtins[d.Name]; ok {
		return b(r, d)
	}
	def, ok := r.functionDefinitions[d.Name]
	if !ok {
		return err.CreateErr("vm/unknown", d.Token, d.Name)
	}
	if r.fa != nil {
		if sig, found := r.fa.GetTypeSignature(d.Name); found {
			if e := r.checkSignature(d, sig); e != nil {
				return e
			}
		}
	}
	r.trace.Push(d.Name)
	if def.Info.TailCallRecursive {
		// The last node is the self-call: running everything before it and
		// looping is the same program without the recursion. The loop exits
		// the way any tail-recursive Charm function does, by an error or not
		// at all.
		body := def.Body[:len(def.Body)-1]
		for {
			if e := r.run(body); e != nil {
				return e
			}
		}
	}
	if e := r.run(def.Body); e != nil {
		return e
	}
	r.trace.Pop()
	return nil
}

// checkSignature is the optional runtime use of the type registry: at least
// one alternative's pops must match the top of the stack, the last listed type
// being the topmost value.
func (r *Runner) checkSignature(d *ast.DefinedFunction, sig signature.TypeSignature) *err.Error {
	snapshot := r.stack.Snapshot()
	for _, unit := range sig.Units {
		if unitMatches(unit, snapshot) {
			return nil
		}
	}
	return err.CreateErr("vm/sig", d.Token, d.Name)
}

func unitMatches(unit signature.Unit, snapshot vector.Vector) bool {
	if snapshot.Len() < len(unit.Pops) {
		return false
	}
	for i, want := range unit.Pops {
		f, _ := snapshot.Index(snapshot.Len() - len(unit.Pops) + i)
		if !want.Matches(typeOf(f.(ast.Function))) {
			return false
		}
	}
	return true
}

func typeOf(f ast.Function) signature.CharmType {
	switch f := f.(type) {
	case *ast.NumberFunction:
		if f.Value.T == values.INTEGER {
			return signature.INT
		}
		return signature.FLOAT
	case *ast.StringFunction:
		return signature.STRING
	case *ast.ListFunction:
		return signature.LIST
	}
	return signature.ANY
}

// CallTrace reports the definitions that were in flight, innermost first.
func (r *Runner) CallTrace() []string {
	return r.trace.ToSlice()
}

// DescribeStack is for the REPL's display after each line.
func (r *Runner) DescribeStack() string {
	return r.stack.Describe()
}

func (r *Runner) StackDepth() int {
	return r.stack.Len()
}

// KnownNames is every name a line could call right now, for tab completion.
func (r *Runner) KnownNames() dtypes.Set[string] {
	names := dtypes.Set[string]{}
	for name := range r.builtins {
		names.Add(name)
	}
	for name := range r.functionDefinitions {
		names.Add(name)
	}
	return names
}
