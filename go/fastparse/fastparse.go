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

// Package fastparse converts JSON number literals to Go numeric types.
//
// Unlike strconv, the Parse functions return the best effort value of
// what they have parsed so far together with the error, and clamp to the
// target type's extremes on overflow instead of failing outright.
package fastparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrOverflow is wrapped by errors reporting values outside the target
// type's range.
var ErrOverflow = errors.New("overflow")

// ParseUint64 parses a base-10 uint64 from s.
//
// It is equivalent to strconv.ParseUint(s, 10, 64) in case it succeeds,
// but on error it will return the best effort value of what it has parsed so far.
func ParseUint64(s string) (uint64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("cannot parse uint64 from empty string")
	}
	i := uint(0)
	for i < uint(len(s)) {
		if !isSpace(s[i]) {
			break
		}
		i++
	}

	d := uint64(0)
	j := i
	for i < uint(len(s)) {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		b := s[i] - '0'

		v := d*10 + uint64(b)
		if v < d {
			return math.MaxUint64, fmt.Errorf("cannot parse uint64 from %q: %w", s, ErrOverflow)
		}
		d = v
		i++
	}
	if i <= j {
		return d, fmt.Errorf("cannot parse uint64 from %q", s)
	}

	for i < uint(len(s)) {
		if !isSpace(s[i]) {
			break
		}
		i++
	}

	if i < uint(len(s)) {
		// Unparsed tail left.
		return d, fmt.Errorf("unparsed tail left after parsing uint64 from %q: %q", s, s[i:])
	}
	return d, nil
}

// ParseInt64 parses a base-10 int64 from s.
//
// It is equivalent to strconv.ParseInt(s, 10, 64) in case it succeeds,
// but on error it will return the best effort value of what it has parsed so far.
func ParseInt64(s string) (int64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("cannot parse int64 from empty string")
	}
	i := uint(0)
	for i < uint(len(s)) {
		if !isSpace(s[i]) {
			break
		}
		i++
	}
	if i >= uint(len(s)) {
		return 0, fmt.Errorf("cannot parse int64 from %q", s)
	}

	minus := s[i] == '-'
	if minus {
		i++
		if i >= uint(len(s)) {
			return 0, fmt.Errorf("cannot parse int64 from %q", s)
		}
	}

	d := uint64(0)
	j := i
	for i < uint(len(s)) {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		b := s[i] - '0'

		v := d*10 + uint64(b)
		if v < d {
			if minus {
				return math.MinInt64, fmt.Errorf("cannot parse int64 from %q: %w", s, ErrOverflow)
			}
			return math.MaxInt64, fmt.Errorf("cannot parse int64 from %q: %w", s, ErrOverflow)
		}
		d = v
		i++
	}

	if d > math.MaxInt64 && !minus {
		return math.MaxInt64, fmt.Errorf("cannot parse int64 from %q: %w", s, ErrOverflow)
	} else if d > math.MaxInt64+1 && minus {
		return math.MinInt64, fmt.Errorf("cannot parse int64 from %q: %w", s, ErrOverflow)
	}

	v := int64(d)
	if minus {
		v = -v
		if d == math.MaxInt64+1 {
			v = math.MinInt64
		}
	}

	if i <= j {
		return v, fmt.Errorf("cannot parse int64 from %q", s)
	}

	for i < uint(len(s)) {
		if !isSpace(s[i]) {
			break
		}
		i++
	}

	if i < uint(len(s)) {
		// Unparsed tail left.
		return v, fmt.Errorf("unparsed tail left after parsing int64 from %q: %q", s, s[i:])
	}
	return v, nil
}

// ParseFloat64 parses floating-point number s.
//
// It is equivalent to strconv.ParseFloat(s, 64) in case it succeeds,
// but on overflow it clamps to ±math.MaxFloat64 and reports the range
// error instead of returning an infinity.
func ParseFloat64(s string) (float64, error) {
	if len(s) == 0 {
		return 0.0, fmt.Errorf("cannot parse float64 from empty string")
	}
	i := uint(0)
	for i < uint(len(s)) {
		if !isSpace(s[i]) {
			break
		}
		i++
	}
	j := uint(len(s))
	for j > i {
		if !isSpace(s[j-1]) {
			break
		}
		j--
	}
	if i >= j {
		return 0.0, fmt.Errorf("cannot parse float64 from %q", s)
	}

	val, err := strconv.ParseFloat(s[i:j], 64)
	if errors.Is(err, strconv.ErrRange) {
		if val < 0 {
			val = -math.MaxFloat64
		} else {
			val = math.MaxFloat64
		}
		return val, fmt.Errorf("cannot parse float64 from %q: %w", s, ErrOverflow)
	}
	if err != nil {
		return val, fmt.Errorf("cannot parse float64 from %q", s)
	}

	return val, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t':
		return true
	default:
		return false
	}
}
