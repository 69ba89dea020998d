/*
Copyright 2026 The YugabyteDB Authors.

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

package qlpb

import (
	"time"

	"github.com/google/uuid"
)

// ValueKind discriminates the payload carried by a QLValue.
type ValueKind int8

const (
	KindNull ValueKind = iota
	KindInt64
	KindDouble
	KindBool
	KindString
	KindBinary
	KindUUID
	KindTimestamp
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInt64:
		return "INT64"
	case KindDouble:
		return "DOUBLE"
	case KindBool:
		return "BOOL"
	case KindString:
		return "STRING"
	case KindBinary:
		return "BINARY"
	case KindUUID:
		return "UUID"
	case KindTimestamp:
		return "TIMESTAMP"
	case KindList:
		return "LIST"
	default:
		return "INVALID"
	}
}

// QLValue is a typed value as carried on the wire. The zero value is NULL.
//
// Accessors are nil-safe and return the zero payload when the value is not of
// the requested kind, mirroring wire-record getter semantics. Callers that
// need to distinguish kinds check Kind first.
type QLValue struct {
	kind ValueKind

	i64   int64
	f64   float64
	b     bool
	str   string
	bytes []byte
	uid   uuid.UUID
	ts    time.Time
	list  []*QLValue
}

// NullValue returns the NULL value.
func NullValue() *QLValue { return &QLValue{} }

// Int64Value returns a BIGINT value.
func Int64Value(v int64) *QLValue { return &QLValue{kind: KindInt64, i64: v} }

// DoubleValue returns a DOUBLE value.
func DoubleValue(v float64) *QLValue { return &QLValue{kind: KindDouble, f64: v} }

// BoolValue returns a BOOLEAN value.
func BoolValue(v bool) *QLValue { return &QLValue{kind: KindBool, b: v} }

// StringValue returns a TEXT value.
func StringValue(v string) *QLValue { return &QLValue{kind: KindString, str: v} }

// BinaryValue returns a BLOB value.
func BinaryValue(v []byte) *QLValue { return &QLValue{kind: KindBinary, bytes: v} }

// UUIDValue returns a UUID value.
func UUIDValue(v uuid.UUID) *QLValue { return &QLValue{kind: KindUUID, uid: v} }

// TimestampValue returns a TIMESTAMP value.
func TimestampValue(v time.Time) *QLValue { return &QLValue{kind: KindTimestamp, ts: v} }

// ListValue returns a LIST value holding the given elements.
func ListValue(elems ...*QLValue) *QLValue { return &QLValue{kind: KindList, list: elems} }

// Kind returns the kind of the value. A nil value is NULL.
func (v *QLValue) Kind() ValueKind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is NULL.
func (v *QLValue) IsNull() bool { return v.Kind() == KindNull }

// Int64 returns the BIGINT payload.
func (v *QLValue) Int64() int64 {
	if v == nil {
		return 0
	}
	return v.i64
}

// Double returns the DOUBLE payload.
func (v *QLValue) Double() float64 {
	if v == nil {
		return 0
	}
	return v.f64
}

// Bool returns the BOOLEAN payload.
func (v *QLValue) Bool() bool {
	if v == nil {
		return false
	}
	return v.b
}

// StringVal returns the TEXT payload.
func (v *QLValue) StringVal() string {
	if v == nil {
		return ""
	}
	return v.str
}

// Binary returns the BLOB payload.
func (v *QLValue) Binary() []byte {
	if v == nil {
		return nil
	}
	return v.bytes
}

// UUID returns the UUID payload.
func (v *QLValue) UUID() uuid.UUID {
	if v == nil {
		return uuid.UUID{}
	}
	return v.uid
}

// Timestamp returns the TIMESTAMP payload.
func (v *QLValue) Timestamp() time.Time {
	if v == nil {
		return time.Time{}
	}
	return v.ts
}

// List returns the LIST elements.
func (v *QLValue) List() []*QLValue {
	if v == nil {
		return nil
	}
	return v.list
}
