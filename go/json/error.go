/*
Copyright 2026 The Jsnom Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package json

import "fmt"

// Code classifies a parse failure.
type Code int32

const (
	// CodeUnexpectedEOF means the input ended while a token or structure
	// was still incomplete.
	CodeUnexpectedEOF Code = iota + 1

	// CodeUnexpectedToken means a byte or token was valid on its own but
	// not at the current grammar position.
	CodeUnexpectedToken

	// CodeInvalidEscape means a string literal contained a malformed or
	// disallowed escape sequence.
	CodeInvalidEscape

	// CodeInvalidNumber means a numeric literal deviated from the JSON
	// number grammar.
	CodeInvalidNumber

	// CodeInvalidUTF8 means the input is not valid UTF-8.
	CodeInvalidUTF8

	// CodeTrailingData means non-whitespace bytes remained after a
	// complete top-level value.
	CodeTrailingData

	// CodeNestingTooDeep means structural nesting exceeded the parser's
	// depth limit.
	CodeNestingTooDeep
)

// String returns the string representation of c.
func (c Code) String() string {
	switch c {
	case CodeUnexpectedEOF:
		return "unexpected end of input"
	case CodeUnexpectedToken:
		return "unexpected token"
	case CodeInvalidEscape:
		return "invalid escape"
	case CodeInvalidNumber:
		return "invalid number"
	case CodeInvalidUTF8:
		return "invalid UTF-8"
	case CodeTrailingData:
		return "trailing data"
	case CodeNestingTooDeep:
		return "nesting too deep"
	default:
		panic(fmt.Errorf("BUG: unknown error code: %d", c))
	}
}

// SyntaxError describes a parse failure. Offset is the byte position in
// the input at which the problem was first detected; converting it to
// line and column numbers is left to the caller.
type SyntaxError struct {
	Code   Code
	Offset int
	msg    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.msg)
}

func errAt(code Code, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Offset: offset, msg: fmt.Sprintf(format, args...)}
}
