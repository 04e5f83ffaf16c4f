package err

import (
	"charm/source/text"
	"charm/source/token"
)

// The 'error' type.
type Error struct {
	ErrorId string
	Message string
	Token   token.Token
}

func (e *Error) Error() string {
	return e.Message + text.DescribeLine(e.Token.Line)
}

type Errors []*Error

// Throw creates the error with the given identifier and appends it to the list.
func Throw(errorID string, errors Errors, tok token.Token, args ...any) Errors {
	return append(errors, CreateErr(errorID, tok, args...))
}
