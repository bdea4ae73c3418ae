package attrparser

import "fmt"

// Reason identifies which grammar rule a fragment violated.
type Reason int

const (
	MissingValue           Reason = iota + 1 // '=' with no value after it
	UnterminatedString                       // quote opened but never closed
	UnterminatedExpression                   // '#{' opened but never closed
	UnexpectedQuote                          // bare quote inside an unquoted token
	UnexpectedCloseBrace                     // '}' with no matching '#{'
	DanglingScheme                           // token ends in ':' with nothing after it
	MissingName                              // '=' with no name before it
)

var reasonNames = map[Reason]string{
	MissingValue:           "missing value",
	UnterminatedString:     "unterminated string",
	UnterminatedExpression: "unterminated expression",
	UnexpectedQuote:        "unexpected quote",
	UnexpectedCloseBrace:   "unexpected close brace",
	DanglingScheme:         "dangling scheme",
	MissingName:            "missing name",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// SyntaxError reports a malformed attribute fragment.
type SyntaxError struct {
	Reason   Reason
	Message  string
	Pos      Position
	Fragment string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 1 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	if e.Pos.Column > 0 {
		return fmt.Sprintf("col %d: %s", e.Pos.Column, e.Message)
	}
	return e.Message
}

// Is matches another *SyntaxError with the same Reason, so the Err* values
// below work with errors.Is.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Reason == e.Reason
}

var (
	ErrMissingValue           = &SyntaxError{Reason: MissingValue, Message: MissingValue.String()}
	ErrUnterminatedString     = &SyntaxError{Reason: UnterminatedString, Message: UnterminatedString.String()}
	ErrUnterminatedExpression = &SyntaxError{Reason: UnterminatedExpression, Message: UnterminatedExpression.String()}
	ErrUnexpectedQuote        = &SyntaxError{Reason: UnexpectedQuote, Message: UnexpectedQuote.String()}
	ErrUnexpectedCloseBrace   = &SyntaxError{Reason: UnexpectedCloseBrace, Message: UnexpectedCloseBrace.String()}
	ErrDanglingScheme         = &SyntaxError{Reason: DanglingScheme, Message: DanglingScheme.String()}
	ErrMissingName            = &SyntaxError{Reason: MissingName, Message: MissingName.String()}
)
