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

package json

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jsnom/jsnom/go/hack"
)

// The scanner is a set of pure functions over (input, offset) pairs:
// each one recognizes a single token starting at the given offset and
// returns the offset just past it, or a *SyntaxError located at the
// offending byte.

func skipWS(s string, pos int) int {
	for pos < len(s) {
		switch s[pos] {
		case 0x20, 0x0A, 0x09, 0x0D:
			pos++
		default:
			return pos
		}
	}
	return pos
}

// firstInvalidUTF8 returns the offset of the first byte that is not part
// of a valid UTF-8 encoding, or -1 if the whole string is valid.
func firstInvalidUTF8(s string) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// scanString decodes the string literal whose opening '"' sits at pos.
// All escape sequences are resolved eagerly; the returned string is the
// final text. Escape errors are reported at the backslash that starts
// the offending sequence.
func scanString(s string, pos int) (string, int, *SyntaxError) {
	// Fast path: scan for a literal without escapes or control bytes.
	i := pos + 1
	for i < len(s) {
		c := s[i]
		if c == '"' {
			return s[pos+1 : i], i + 1, nil
		}
		if c == '\\' || c < 0x20 {
			break
		}
		i++
	}
	if i >= len(s) {
		return "", len(s), errAt(CodeUnexpectedEOF, pos, `missing closing '"'`)
	}

	// Slow path: decode into a scratch buffer.
	b := make([]byte, 0, len(s)-pos)
	b = append(b, s[pos+1:i]...)
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"':
			return hack.String(b), i + 1, nil
		case c < 0x20:
			return "", i, errAt(CodeUnexpectedToken, i, "raw control character %q in string literal", c)
		case c == '\\':
			if i+1 >= len(s) {
				return "", len(s), errAt(CodeUnexpectedEOF, i, "unterminated escape sequence")
			}
			switch s[i+1] {
			case '"':
				b = append(b, '"')
				i += 2
			case '\\':
				b = append(b, '\\')
				i += 2
			case '/':
				b = append(b, '/')
				i += 2
			case 'b':
				b = append(b, '\b')
				i += 2
			case 'f':
				b = append(b, '\f')
				i += 2
			case 'n':
				b = append(b, '\n')
				i += 2
			case 'r':
				b = append(b, '\r')
				i += 2
			case 't':
				b = append(b, '\t')
				i += 2
			case 'u':
				r, next, err := scanUnicodeEscape(s, i)
				if err != nil {
					return "", i, err
				}
				b = utf8.AppendRune(b, r)
				i = next
			default:
				return "", i, errAt(CodeInvalidEscape, i, `unknown escape sequence \%c`, s[i+1])
			}
		default:
			b = append(b, c)
			i++
		}
	}
	return "", len(s), errAt(CodeUnexpectedEOF, pos, `missing closing '"'`)
}

// scanUnicodeEscape decodes a \uXXXX sequence starting at the backslash,
// consuming a full surrogate pair when the first code unit is a high
// surrogate. Lone surrogates are rejected.
func scanUnicodeEscape(s string, pos int) (rune, int, *SyntaxError) {
	if pos+6 > len(s) {
		return 0, 0, errAt(CodeInvalidEscape, pos, `\u escape needs 4 hex digits`)
	}
	x, perr := strconv.ParseUint(s[pos+2:pos+6], 16, 32)
	if perr != nil {
		return 0, 0, errAt(CodeInvalidEscape, pos, `non-hex digits in \u escape %q`, s[pos:pos+6])
	}
	r := rune(x)
	if !utf16.IsSurrogate(r) {
		return r, pos + 6, nil
	}
	if r >= 0xDC00 {
		// Low surrogate without a preceding high surrogate.
		return 0, 0, errAt(CodeInvalidEscape, pos, `unpaired low surrogate \u%04X`, x)
	}
	if pos+12 > len(s) || s[pos+6] != '\\' || s[pos+7] != 'u' {
		return 0, 0, errAt(CodeInvalidEscape, pos, `unpaired high surrogate \u%04X`, x)
	}
	x1, perr := strconv.ParseUint(s[pos+8:pos+12], 16, 32)
	if perr != nil {
		return 0, 0, errAt(CodeInvalidEscape, pos+6, `non-hex digits in \u escape %q`, s[pos+6:pos+12])
	}
	r = utf16.DecodeRune(rune(x), rune(x1))
	if r == utf8.RuneError {
		return 0, 0, errAt(CodeInvalidEscape, pos, `surrogate \u%04X not followed by a low surrogate`, x)
	}
	return r, pos + 12, nil
}

// scanNumber recognizes a numeric literal starting at pos and returns
// the offset just past it. The JSON number grammar is enforced strictly:
// no leading '+', no leading zeros, at least one digit after '.' and
// after the exponent marker.
func scanNumber(s string, pos int) (int, *SyntaxError) {
	i := pos
	if i < len(s) && s[i] == '-' {
		i++
	}

	// Integer part.
	switch {
	case i >= len(s):
		return i, errAt(CodeUnexpectedEOF, i, "unexpected end of numeric literal")
	case s[i] == '0':
		i++
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			return i, errAt(CodeInvalidNumber, i, "leading zero in numeric literal")
		}
	case s[i] >= '1' && s[i] <= '9':
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return i, errAt(CodeInvalidNumber, i, "numeric literal has no integer part")
	}

	// Fraction.
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return i, errAt(CodeInvalidNumber, i, "missing digits after decimal point")
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}

	// Exponent.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return i, errAt(CodeInvalidNumber, i, "missing digits in exponent")
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}

	return i, nil
}
