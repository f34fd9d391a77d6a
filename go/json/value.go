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
	"fmt"
	"strconv"

	"github.com/jsnom/jsnom/go/fastparse"
	"github.com/jsnom/jsnom/go/hack"
)

// Type represents JSON type.
type Type int32

const (
	// TypeNull is JSON null.
	TypeNull Type = iota

	// TypeBoolean is JSON boolean.
	TypeBoolean

	// TypeNumber is JSON number type.
	TypeNumber

	// TypeString is JSON string type.
	TypeString

	// TypeArray is JSON array type.
	TypeArray

	// TypeObject is JSON object type.
	TypeObject
)

// String returns string representation of t.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		panic(fmt.Errorf("BUG: unknown Value type: %d", t))
	}
}

// Value represents any JSON value.
//
// Call Type in order to determine the actual type of the JSON value.
// Each container exclusively owns its children; the grammar cannot
// produce cycles or sharing.
//
// All accessors tolerate a nil receiver and report failure, so results
// of Object.Get chain safely without a nil check.
type Value struct {
	o Object
	a []*Value
	s string
	f float64
	t Type
}

var (
	// ValueTrue is the JSON true literal.
	ValueTrue = &Value{t: TypeBoolean, f: 1}
	// ValueFalse is the JSON false literal.
	ValueFalse = &Value{t: TypeBoolean}
	// ValueNull is the JSON null literal.
	ValueNull = &Value{t: TypeNull}
)

// NewString returns a string Value holding s.
func NewString(s string) *Value {
	return &Value{t: TypeString, s: s}
}

// NewNumberFloat64 returns a number Value holding f. The literal text
// used for serialization is the shortest decimal form of f.
func NewNumberFloat64(f float64) *Value {
	return &Value{t: TypeNumber, s: strconv.FormatFloat(f, 'g', -1, 64), f: f}
}

// NewArray returns an array Value holding vals in order.
func NewArray(vals ...*Value) *Value {
	return &Value{t: TypeArray, a: vals}
}

// NewObject returns an empty object Value. Populate it with Object.Set.
func NewObject() *Value {
	return &Value{t: TypeObject}
}

// Type returns the type of the v.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

// Bool returns the underlying JSON bool for the v.
func (v *Value) Bool() (bool, bool) {
	if v == nil || v.t != TypeBoolean {
		return false, false
	}
	return v.f != 0, true
}

// Float64 returns the float64 approximation of a number Value.
func (v *Value) Float64() (float64, bool) {
	if v == nil || v.t != TypeNumber {
		return 0, false
	}
	return v.f, true
}

// Int64 converts a number Value's literal text exactly to int64.
func (v *Value) Int64() (int64, bool) {
	if v == nil || v.t != TypeNumber {
		return 0, false
	}
	i, err := fastparse.ParseInt64(v.s)
	if err != nil {
		return i, false
	}
	return i, true
}

// Uint64 converts a number Value's literal text exactly to uint64.
func (v *Value) Uint64() (uint64, bool) {
	if v == nil || v.t != TypeNumber {
		return 0, false
	}
	u, err := fastparse.ParseUint64(v.s)
	if err != nil {
		return u, false
	}
	return u, true
}

// StringValue returns the decoded text of a string Value.
func (v *Value) StringValue() (string, bool) {
	if v == nil || v.t != TypeString {
		return "", false
	}
	return v.s, true
}

// StringBytes returns the decoded text of a string Value as bytes.
// The slice aliases the Value; do not modify it.
func (v *Value) StringBytes() ([]byte, bool) {
	if v == nil || v.t != TypeString {
		return nil, false
	}
	return hack.StringBytes(v.s), true
}

// Raw returns the literal text a number Value was parsed from, or the
// decoded text of a string Value.
func (v *Value) Raw() string {
	if v == nil {
		return ""
	}
	return v.s
}

// Array returns the underlying JSON array for the v.
func (v *Value) Array() ([]*Value, bool) {
	if v == nil || v.t != TypeArray {
		return nil, false
	}
	return v.a, true
}

// Object returns the underlying JSON object for the v.
func (v *Value) Object() (*Object, bool) {
	if v == nil || v.t != TypeObject {
		return nil, false
	}
	return &v.o, true
}

// Equal reports whether v and other are structurally equal: same type,
// arrays element-by-element in order, objects by key set independent of
// member order, numbers by exact float64 equality.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.t != other.t {
		return false
	}
	switch v.t {
	case TypeNull:
		return true
	case TypeBoolean:
		return (v.f != 0) == (other.f != 0)
	case TypeNumber:
		return v.f == other.f
	case TypeString:
		return v.s == other.s
	case TypeArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i, vv := range v.a {
			if !vv.Equal(other.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		return v.o.equal(&other.o)
	default:
		return false
	}
}

type kv struct {
	k string
	v *Value
}

// Object represents JSON object. Members keep document order; a
// duplicate key replaces the earlier member and iterates at the
// position of its last occurrence.
type Object struct {
	kvs []kv
}

func (o *Object) reset() {
	o.kvs = o.kvs[:0]
}

// set implements the last-value-wins, last-key-position duplicate
// policy during parsing and construction.
func (o *Object) set(key string, v *Value) {
	for i := range o.kvs {
		if o.kvs[i].k == key {
			o.kvs = append(o.kvs[:i], o.kvs[i+1:]...)
			break
		}
	}
	o.kvs = append(o.kvs, kv{k: key, v: v})
}

// Set maps key to v, replacing any existing member with the same key.
func (o *Object) Set(key string, v *Value) {
	o.set(key, v)
}

// Len returns the number of items in the o.
func (o *Object) Len() int {
	return len(o.kvs)
}

// Keys returns the object's keys in member order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.kvs))
	for _, kv := range o.kvs {
		keys = append(keys, kv.k)
	}
	return keys
}

// Get returns the value for the given key in the o.
//
// Returns nil if the value for the given key isn't found.
func (o *Object) Get(key string) *Value {
	for _, kv := range o.kvs {
		if kv.k == key {
			return kv.v
		}
	}
	return nil
}

// Visit calls f for each item in the o in member order.
func (o *Object) Visit(f func(key string, v *Value)) {
	if o == nil {
		return
	}
	for _, kv := range o.kvs {
		f(kv.k, kv.v)
	}
}

func (o *Object) equal(other *Object) bool {
	if len(o.kvs) != len(other.kvs) {
		return false
	}
	for _, kv := range o.kvs {
		w := other.Get(kv.k)
		if w == nil || !kv.v.Equal(w) {
			return false
		}
	}
	return true
}
