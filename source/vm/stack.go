package vm

import (
	"charm/source/ast"

	"src.elv.sh/pkg/persistent/vector"
)

// The operand stack, backed by a persistent vector: pushing and popping make
// new versions, so the REPL's stack display and error reports read a snapshot
// without copying anything.
type Stack struct {
	v vector.Vector
}

func newStack() *Stack {
	return &Stack{v: vector.Empty}
}

func (s *Stack) Push(f ast.Function) {
	s.v = s.v.Conj(f)
}

func (s *Stack) Pop() (ast.Function, bool) {
	if s.v.Len() == 0 {
		return nil, false
	}
	top, _ := s.v.Index(s.v.Len() - 1)
	s.v = s.v.Pop()
	return top.(ast.Function), true
}

func (s *Stack) Len() int {
	return s.v.Len()
}

// Describe lists the stack top first, one indented line per value.
func (s *Stack) Describe() string {
	result := ""
	for i := s.v.Len() - 1; i >= 0; i-- {
		f, _ := s.v.Index(i)
		result = result + "    " + f.(ast.Function).String() + "\n"
	}
	return result
}

// Snapshot hands out the current version of the stack; later mutation of the
// runner can't change it.
func (s *Stack) Snapshot() vector.Vector {
	return s.v
}
