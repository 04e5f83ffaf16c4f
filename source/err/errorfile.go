package err

import (
	"charm/source/token"
)

// A map from error identifiers to functions that supply the corresponding error
// messages.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are hub, num, parse, sig, and vm.
//
// Two otherwise identical errors thrown in different places in the Go code must
// be assigned different identifiers, if only by suffixing /a, /b, etc to the
// identifier.

type ErrorCreator struct {
	Message func(tok token.Token, args ...any) string
}

var ErrorCreatorMap = map[string]ErrorCreator{

	"hub/history": {
		Message: func(tok token.Token, args ...any) string {
			return "can't open history store: " + args[0].(string)
		},
	},

	"hub/prelude": {
		Message: func(tok token.Token, args ...any) string {
			return "Prelude.charm nonexistent or unopenable"
		},
	},

	"num/parse": {
		Message: func(tok token.Token, args ...any) string {
			return "malformed number " + emph(tok.Literal)
		},
	},

	"parse/bracket": {
		Message: func(tok token.Token, args ...any) string {
			return "expected a close bracket before the end of the line; perhaps you missed a space?"
		},
	},

	"parse/quote": {
		Message: func(tok token.Token, args ...any) string {
			return "expected an ending quote before the end of the line; perhaps you missed a space?"
		},
	},

	"sig/alt": {
		Message: func(tok token.Token, args ...any) string {
			return "type alternative specified before completion of type"
		},
	},

	"sig/type": {
		Message: func(tok token.Token, args ...any) string {
			return "unrecognized type " + emph(args[0].(string))
		},
	},

	"vm/div/zero": {
		Message: func(tok token.Token, args ...any) string {
			return "division by zero"
		},
	},

	"vm/inline": {
		Message: func(tok token.Token, args ...any) string {
			return "no inlineable definition for " + emph(args[0].(string))
		},
	},

	"vm/list": {
		Message: func(tok token.Token, args ...any) string {
			return "expected a quotation on the stack, not " + emph(args[0].(string))
		},
	},

	"vm/number": {
		Message: func(tok token.Token, args ...any) string {
			return "expected a number on the stack, not " + emph(args[0].(string))
		},
	},

	"vm/sig": {
		Message: func(tok token.Token, args ...any) string {
			return "no alternative of the signature of " + emph(args[0].(string)) + " matches the stack"
		},
	},

	"vm/stack/empty": {
		Message: func(tok token.Token, args ...any) string {
			return "stack underflow in " + emph(args[0].(string))
		},
	},

	"vm/string": {
		Message: func(tok token.Token, args ...any) string {
			return "expected a string on the stack, not " + emph(args[0].(string))
		},
	},

	"vm/unknown": {
		Message: func(tok token.Token, args ...any) string {
			return "unknown function " + emph(args[0].(string))
		},
	},
}

// CreateErr returns an error with its message filled in from the map. Asking for
// an identifier that isn't in the map is a bug in Charm, not in the user's
// program, and says so.
func CreateErr(errorID string, tok token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorID]
	if !ok {
		return &Error{ErrorId: errorID, Message: "Charm is trying and failing to raise an error with reference " + emph(errorID), Token: tok}
	}
	return &Error{ErrorId: errorID, Message: creator.Message(tok, args...), Token: tok}
}

func emph(s string) string {
	return "'" + s + "'"
}
