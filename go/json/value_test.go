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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueType(t *testing.T) {
	testcases := []struct {
		input    string
		expected Type
	}{
		{input: "null", expected: TypeNull},
		{input: "true", expected: TypeBoolean},
		{input: "1.5", expected: TypeNumber},
		{input: `"x"`, expected: TypeString},
		{input: "[]", expected: TypeArray},
		{input: "{}", expected: TypeObject},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v.Type())
			require.Equal(t, tc.expected.String(), v.Type().String())
		})
	}

	var nilValue *Value
	assert.Equal(t, TypeNull, nilValue.Type())
}

func TestValueAccessorMismatch(t *testing.T) {
	v, err := Parse(`"text"`)
	require.NoError(t, err)

	_, ok := v.Float64()
	assert.False(t, ok)
	_, ok = v.Int64()
	assert.False(t, ok)
	_, ok = v.Bool()
	assert.False(t, ok)
	_, ok = v.Array()
	assert.False(t, ok)
	_, ok = v.Object()
	assert.False(t, ok)

	s, ok := v.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "text", s)
	b, ok := v.StringBytes()
	assert.True(t, ok)
	assert.Equal(t, []byte("text"), b)
}

func TestValueIntegerAccessors(t *testing.T) {
	v, err := Parse("9007199254740993")
	require.NoError(t, err)

	// Exact via the literal text, even beyond 2^53.
	i, ok := v.Int64()
	require.True(t, ok)
	require.Equal(t, int64(9007199254740993), i)

	u, ok := v.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(9007199254740993), u)

	v, err = Parse("2.5")
	require.NoError(t, err)
	_, ok = v.Int64()
	require.False(t, ok)
}

func TestNumberEquality(t *testing.T) {
	testcases := []struct {
		a, b  string
		equal bool
	}{
		{a: "1", b: "1.0", equal: true},
		{a: "1", b: "1e0", equal: true},
		{a: "-3e2", b: "-300", equal: true},
		{a: "0", b: "-0", equal: true},
		{a: "1", b: "2", equal: false},
		{a: "0.1", b: "0.2", equal: false},
	}
	for _, tc := range testcases {
		t.Run(tc.a+" vs "+tc.b, func(t *testing.T) {
			va, err := Parse(tc.a)
			require.NoError(t, err)
			vb, err := Parse(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.equal, va.Equal(vb))
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	testcases := []struct {
		a, b  string
		equal bool
	}{
		// Object member order does not matter.
		{a: `{"x":1,"y":2}`, b: `{"y":2,"x":1}`, equal: true},
		// Array order does.
		{a: "[1, 2]", b: "[2, 1]", equal: false},
		{a: "[1, 2]", b: "[1, 2, 3]", equal: false},
		{a: `{"x":1}`, b: `{"x":1,"y":2}`, equal: false},
		{a: `{"x":1}`, b: `{"y":1}`, equal: false},
		{a: `{"a":{"b":[true]}}`, b: `{"a":{"b":[true]}}`, equal: true},
		{a: "null", b: "false", equal: false},
		{a: `"1"`, b: "1", equal: false},
	}
	for _, tc := range testcases {
		t.Run(tc.a+" vs "+tc.b, func(t *testing.T) {
			va, err := Parse(tc.a)
			require.NoError(t, err)
			vb, err := Parse(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.equal, va.Equal(vb))
			require.Equal(t, tc.equal, vb.Equal(va))
		})
	}
}

func TestConstructedValues(t *testing.T) {
	obj := NewObject()
	o, ok := obj.Object()
	require.True(t, ok)
	o.Set("user", NewString("ada"))
	o.Set("scores", NewArray(NewNumberFloat64(1), NewNumberFloat64(2.5)))
	o.Set("user", NewString("grace"))

	parsed, err := Parse(`{"scores": [1, 2.5], "user": "grace"}`)
	require.NoError(t, err)
	require.True(t, obj.Equal(parsed))
	require.Empty(t, cmp.Diff([]string{"scores", "user"}, o.Keys()))

	require.Nil(t, o.Get("missing"))
}

func TestNilValueAccessors(t *testing.T) {
	v, err := Parse("{}")
	require.NoError(t, err)
	o, ok := v.Object()
	require.True(t, ok)

	// Get on a missing key returns nil; every accessor must chain
	// safely off it.
	missing := o.Get("missing")
	require.Nil(t, missing)

	_, ok = missing.Bool()
	assert.False(t, ok)
	_, ok = missing.Float64()
	assert.False(t, ok)
	_, ok = missing.Int64()
	assert.False(t, ok)
	_, ok = missing.Uint64()
	assert.False(t, ok)
	_, ok = missing.StringValue()
	assert.False(t, ok)
	_, ok = missing.StringBytes()
	assert.False(t, ok)
	_, ok = missing.Array()
	assert.False(t, ok)
	_, ok = missing.Object()
	assert.False(t, ok)
	assert.Equal(t, "", missing.Raw())
	assert.Equal(t, TypeNull, missing.Type())
}

func TestNilValueEquality(t *testing.T) {
	var a *Value
	require.True(t, a.Equal(nil))
	require.False(t, a.Equal(ValueNull))
	require.False(t, ValueNull.Equal(nil))
}
