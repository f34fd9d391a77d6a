/*
Copyright 2018 Aliaksandr Valialkin
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

// Package json parses JSON text into a tree of typed values.
//
// The package-level Parse and ParseBytes functions are the ergonomic
// entry points; each call builds a fully caller-owned tree. The Parser
// type additionally reuses its internal value arena across calls for
// allocation-sensitive callers.
//
// Documented semantic choices, all externally observable:
//
//   - Numbers keep their literal text for exact serialization and carry
//     an eagerly parsed float64 approximation; Value.Equal compares
//     numbers by exact float64 equality, so integers beyond 2^53 and
//     exact decimal fractions are subject to float64 rounding.
//   - Duplicate object keys resolve last-value-wins, with the surviving
//     member iterating at the position of the last occurrence.
//   - Nesting depth is bounded (DefaultMaxDepth, overridable per
//     Parser); exceeding it is an error, never a stack overflow.
//   - Exactly one top-level value is accepted; concatenated documents
//     are a trailing-data error.
//
// Every failure is a *SyntaxError carrying a Code and the byte offset of
// the first violation. Malformed input never panics.
package json

import (
	"errors"

	"github.com/jsnom/jsnom/go/fastparse"
	"github.com/jsnom/jsnom/go/hack"
)

// DefaultMaxDepth is the nesting depth limit used when Parser.MaxDepth
// is zero. Deeply nested documents are an adversarial input surface for
// recursive descent, so the bound is deliberately conservative.
const DefaultMaxDepth = 300

// Parser parses JSON.
//
// Parser may be re-used for subsequent parsing: it keeps an internal
// value arena, so values returned from Parse* are valid only until the
// next Parse* call on the same Parser. Use the package-level Parse and
// ParseBytes when the tree must outlive the parser.
//
// Parser cannot be used from concurrent goroutines; independent Parsers
// are fully independent.
type Parser struct {
	// MaxDepth bounds structural nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	// b contains a working copy of the string to be parsed.
	b []byte

	// c is a cache for json values.
	c cache
}

// Parse parses s containing JSON.
//
// The returned value is valid until the next call to Parse*.
func (p *Parser) Parse(s string) (*Value, error) {
	p.b = append(p.b[:0], s...)
	p.c.reset()
	return p.parse(hack.String(p.b))
}

// ParseBytes parses b containing JSON.
//
// The returned Value is valid until the next call to Parse*.
func (p *Parser) ParseBytes(b []byte) (*Value, error) {
	return p.Parse(hack.String(b))
}

// Parse parses s containing a single JSON value and returns the root of
// the resulting tree. The tree is fully owned by the caller.
func Parse(s string) (*Value, error) {
	var p Parser
	return p.Parse(s)
}

// ParseBytes parses b containing a single JSON value and returns the
// root of the resulting tree. The tree does not alias b.
func ParseBytes(b []byte) (*Value, error) {
	var p Parser
	return p.ParseBytes(b)
}

func (p *Parser) parse(s string) (*Value, error) {
	if i := firstInvalidUTF8(s); i >= 0 {
		return nil, errAt(CodeInvalidUTF8, i, "invalid UTF-8 byte 0x%02X", s[i])
	}

	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	pr := parser{s: s, c: &p.c, maxDepth: maxDepth}

	v, pos, err := pr.parseValue(0, 0)
	if err != nil {
		return nil, err
	}
	pos = skipWS(s, pos)
	if pos < len(s) {
		return nil, errAt(CodeTrailingData, pos, "unexpected tail %q", startEndString(s[pos:]))
	}
	return v, nil
}

func startEndString(s string) string {
	const maxStartEndStringLen = 80

	if len(s) <= maxStartEndStringLen {
		return s
	}
	start := s[:40]
	end := s[len(s)-40:]
	return start + "..." + end
}

type cache struct {
	vs []Value
}

func (c *cache) reset() {
	c.vs = c.vs[:0]
}

func (c *cache) getValue() *Value {
	if cap(c.vs) > len(c.vs) {
		c.vs = c.vs[:len(c.vs)+1]
	} else {
		c.vs = append(c.vs, Value{})
	}
	// Do not reset the value, since the caller must properly init it.
	return &c.vs[len(c.vs)-1]
}

// parser is the per-call state of the recursive descent reducer: the
// immutable input, the value arena and the depth bound. The cursor is
// threaded through as an explicit offset so that errors can point at
// exact byte positions.
type parser struct {
	s        string
	c        *cache
	maxDepth int
}

// parseValue reduces one complete value starting at the first
// non-whitespace byte at or after pos, dispatching on that byte alone
// (single-token lookahead).
func (p *parser) parseValue(pos, depth int) (*Value, int, *SyntaxError) {
	s := p.s
	pos = skipWS(s, pos)
	if pos >= len(s) {
		return nil, pos, errAt(CodeUnexpectedEOF, pos, "value expected")
	}
	depth++
	if depth > p.maxDepth {
		return nil, pos, errAt(CodeNestingTooDeep, pos, "nesting exceeds %d levels", p.maxDepth)
	}

	switch c := s[pos]; {
	case c == '{':
		return p.parseObject(pos+1, depth)
	case c == '[':
		return p.parseArray(pos+1, depth)
	case c == '"':
		ss, next, err := scanString(s, pos)
		if err != nil {
			return nil, pos, err
		}
		v := p.c.getValue()
		v.t = TypeString
		v.s = ss
		return v, next, nil
	case c == 't':
		return p.parseKeyword(pos, "true", ValueTrue)
	case c == 'f':
		return p.parseKeyword(pos, "false", ValueFalse)
	case c == 'n':
		return p.parseKeyword(pos, "null", ValueNull)
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber(pos)
	default:
		return nil, pos, errAt(CodeUnexpectedToken, pos, "unexpected character %q; value expected", c)
	}
}

func (p *parser) parseKeyword(pos int, kw string, v *Value) (*Value, int, *SyntaxError) {
	rest := p.s[pos:]
	if len(rest) >= len(kw) && rest[:len(kw)] == kw {
		return v, pos + len(kw), nil
	}
	if len(rest) < len(kw) && kw[:len(rest)] == rest {
		return nil, pos, errAt(CodeUnexpectedEOF, len(p.s), "unexpected end of input in %q", kw)
	}
	return nil, pos, errAt(CodeUnexpectedToken, pos, "unexpected value %q", startEndString(rest))
}

func (p *parser) parseNumber(pos int) (*Value, int, *SyntaxError) {
	next, err := scanNumber(p.s, pos)
	if err != nil {
		return nil, pos, err
	}
	lit := p.s[pos:next]
	f, ferr := fastparse.ParseFloat64(lit)
	if ferr != nil && !errors.Is(ferr, fastparse.ErrOverflow) {
		return nil, pos, errAt(CodeInvalidNumber, pos, "invalid number %q", lit)
	}
	v := p.c.getValue()
	v.t = TypeNumber
	v.s = lit
	v.f = f
	return v, next, nil
}

func (p *parser) parseArray(pos, depth int) (*Value, int, *SyntaxError) {
	s := p.s
	pos = skipWS(s, pos)
	if pos >= len(s) {
		return nil, pos, errAt(CodeUnexpectedEOF, pos, "missing ']'")
	}

	a := p.c.getValue()
	a.t = TypeArray
	a.a = a.a[:0]
	if s[pos] == ']' {
		return a, pos + 1, nil
	}

	for {
		v, next, err := p.parseValue(pos, depth)
		if err != nil {
			return nil, pos, err
		}
		a.a = append(a.a, v)

		pos = skipWS(s, next)
		if pos >= len(s) {
			return nil, pos, errAt(CodeUnexpectedEOF, pos, "unexpected end of array")
		}
		switch s[pos] {
		case ',':
			pos++
		case ']':
			return a, pos + 1, nil
		default:
			return nil, pos, errAt(CodeUnexpectedToken, pos, "missing ',' after array value")
		}
	}
}

func (p *parser) parseObject(pos, depth int) (*Value, int, *SyntaxError) {
	s := p.s
	pos = skipWS(s, pos)
	if pos >= len(s) {
		return nil, pos, errAt(CodeUnexpectedEOF, pos, "missing '}'")
	}

	o := p.c.getValue()
	o.t = TypeObject
	o.o.reset()
	if s[pos] == '}' {
		return o, pos + 1, nil
	}

	for {
		// Parse key.
		pos = skipWS(s, pos)
		if pos >= len(s) {
			return nil, pos, errAt(CodeUnexpectedEOF, pos, "object key expected")
		}
		if s[pos] != '"' {
			return nil, pos, errAt(CodeUnexpectedToken, pos, `cannot find opening '"' for object key`)
		}
		key, next, err := scanString(s, pos)
		if err != nil {
			return nil, pos, err
		}
		pos = skipWS(s, next)
		if pos >= len(s) {
			return nil, pos, errAt(CodeUnexpectedEOF, pos, "missing ':' after object key")
		}
		if s[pos] != ':' {
			return nil, pos, errAt(CodeUnexpectedToken, pos, "missing ':' after object key")
		}
		pos++

		// Parse value.
		v, next, err := p.parseValue(pos, depth)
		if err != nil {
			return nil, pos, err
		}
		o.o.set(key, v)

		pos = skipWS(s, next)
		if pos >= len(s) {
			return nil, pos, errAt(CodeUnexpectedEOF, pos, "unexpected end of object")
		}
		switch s[pos] {
		case ',':
			pos++
		case '}':
			return o, pos + 1, nil
		default:
			return nil, pos, errAt(CodeUnexpectedToken, pos, "missing ',' after object value")
		}
	}
}
