package values

import (
	"math/big"
	"strings"
)

type NumberType int

const (
	INTEGER NumberType = iota
	FLOAT
)

// A Charm number is an arbitrary-precision integer or an arbitrary-precision
// float. Which one is decided entirely by the syntax: a '.' anywhere in the
// token makes it a float.
type Number struct {
	T NumberType
	I *big.Int
	F *big.Float
}

// The precision we give big floats, in bits. Matches a generous long double.
const FLOAT_PRECISION = 128

// MakeNumber constructs a Number from a token already recognized as numeric.
// Syntactically acceptable tokens can still be semantically malformed ("1.2.3",
// "--5"); the big-number library is the arbiter and its rejection is returned
// as the ok flag.
func MakeNumber(literal string) (Number, bool) {
	if strings.Contains(literal, ".") {
		f, ok := new(big.Float).SetPrec(FLOAT_PRECISION).SetString(literal)
		if !ok {
			return Number{}, false
		}
		return Number{T: FLOAT, F: f}, true
	}
	i, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return Number{}, false
	}
	return Number{T: INTEGER, I: i}, true
}

func MakeInt(i int64) Number {
	return Number{T: INTEGER, I: big.NewInt(i)}
}

func (n Number) IsZero() bool {
	if n.T == INTEGER {
		return n.I.Sign() == 0
	}
	return n.F.Sign() == 0
}

// Compare returns -1, 0 or 1. Mixed comparisons are done in floats.
func (n Number) Compare(m Number) int {
	if n.T == INTEGER && m.T == INTEGER {
		return n.I.Cmp(m.I)
	}
	return n.asFloat().Cmp(m.asFloat())
}

func (n Number) asFloat() *big.Float {
	if n.T == FLOAT {
		return n.F
	}
	return new(big.Float).SetPrec(FLOAT_PRECISION).SetInt(n.I)
}

func (n Number) String() string {
	if n.T == INTEGER {
		return n.I.String()
	}
	return n.F.Text('g', -1)
}

func arith(n, m Number, intOp func(*big.Int, *big.Int, *big.Int) *big.Int,
	floatOp func(*big.Float, *big.Float, *big.Float) *big.Float) Number {
	if n.T == INTEGER && m.T == INTEGER {
		return Number{T: INTEGER, I: intOp(new(big.Int), n.I, m.I)}
	}
	return Number{T: FLOAT, F: floatOp(new(big.Float).SetPrec(FLOAT_PRECISION), n.asFloat(), m.asFloat())}
}

func (n Number) Add(m Number) Number {
	return arith(n, m, (*big.Int).Add, (*big.Float).Add)
}

func (n Number) Sub(m Number) Number {
	return arith(n, m, (*big.Int).Sub, (*big.Float).Sub)
}

func (n Number) Mul(m Number) Number {
	return arith(n, m, (*big.Int).Mul, (*big.Float).Mul)
}

// Div is integer division when both operands are integers. Dividing by zero is
// the caller's problem to prevent.
func (n Number) Div(m Number) Number {
	return arith(n, m, (*big.Int).Quo, (*big.Float).Quo)
}
