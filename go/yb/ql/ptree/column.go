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

// Package ptree holds the analyzed-statement model the semantic analyzer
// hands to the executor: resolved column descriptors, the column-operation
// families of a WHERE clause, and the typed expression trees they carry.
package ptree

// ColumnRole places a column within the table's key structure. A column's
// role never changes.
type ColumnRole int8

const (
	// RoleRegular is a non-key column.
	RoleRegular ColumnRole = iota
	// RoleHash is a hash-partition key column: its value determines the
	// tablet routing hash.
	RoleHash
	// RoleRange is a range primary-key column, ordering rows within a
	// partition.
	RoleRange
)

func (r ColumnRole) String() string {
	switch r {
	case RoleRegular:
		return "REGULAR"
	case RoleHash:
		return "HASH"
	case RoleRange:
		return "RANGE"
	default:
		return "INVALID"
	}
}

// ColumnDesc describes a resolved column of the target table.
type ColumnDesc struct {
	ID   int32
	Name string
	Role ColumnRole
}

// IsHash reports whether the column is part of the hash partition key.
func (d *ColumnDesc) IsHash() bool { return d.Role == RoleHash }

// IsPrimary reports whether the column is part of the primary key.
func (d *ColumnDesc) IsPrimary() bool { return d.Role == RoleHash || d.Role == RoleRange }
