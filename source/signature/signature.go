package signature

// The fixed set of type tokens that may appear in a type signature. Anything
// else in type position is a parse error.
type CharmType int

const (
	ANY CharmType = iota
	LIST
	LIST_STRING
	STRING
	INT
	FLOAT
)

var typeTokens = map[string]CharmType{
	"any":         ANY,
	"list":        LIST,
	"list/string": LIST_STRING,
	"string":      STRING,
	"int":         INT,
	"float":       FLOAT,
}

func TypeFromToken(literal string) (CharmType, bool) {
	t, ok := typeTokens[literal]
	return t, ok
}

func (t CharmType) String() string {
	switch t {
	case ANY:
		return "any"
	case LIST:
		return "list"
	case LIST_STRING:
		return "list/string"
	case STRING:
		return "string"
	case INT:
		return "int"
	case FLOAT:
		return "float"
	}
	return "unknown"
}

// Matches says whether a value of type u satisfies a signature slot of type t.
func (t CharmType) Matches(u CharmType) bool {
	switch t {
	case ANY:
		return true
	case LIST_STRING:
		return u == LIST || u == STRING || u == LIST_STRING
	}
	return t == u
}

// One alternative of a signature: the types a function pops and the types it
// pushes, outermost last.
type Unit struct {
	Pops   []CharmType
	Pushes []CharmType
}

func (u Unit) String() (result string) {
	for _, t := range u.Pops {
		result = result + t.String() + " "
	}
	result = result + "->"
	for _, t := range u.Pushes {
		result = result + " " + t.String()
	}
	return
}

// A declared stack effect for a named function: one or more alternatives
// separated by '|' in the source.
type TypeSignature struct {
	FunctionName string
	Units        []Unit
}

func (sig TypeSignature) String() (result string) {
	result = sig.FunctionName + " ::"
	sep := " "
	for _, u := range sig.Units {
		result = result + sep + u.String()
		sep = " | "
	}
	return
}
