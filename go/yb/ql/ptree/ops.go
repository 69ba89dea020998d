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

package ptree

import (
	"github.com/Pedja-Djape/yugabyte-db/go/yb/ql/qlpb"
)

// The analyzer sorts key-column operations to match schema declaration
// order for hash and range columns, and guarantees that operations on hash
// columns use only = or IN. The executor relies on both contracts.

// ColumnOp compares a resolved column against an expression.
type ColumnOp struct {
	Desc *ColumnDesc
	Op   qlpb.Operator
	Expr Expr
}

// SubscriptedColumnOp compares an element of a collection column against an
// expression. Args locate the element, e.g. the key of a map entry.
type SubscriptedColumnOp struct {
	Desc *ColumnDesc
	Args []Expr
	Op   qlpb.Operator
	Expr Expr
}

// FuncOp compares a builtin call against a value expression.
type FuncOp struct {
	Func  *BCall
	Op    qlpb.Operator
	Value Expr
}

// PartitionKeyOp constrains token(...) over the full hash key. The value
// expression folds at plan time to a signed 64-bit CQL token.
type PartitionKeyOp struct {
	Op   qlpb.Operator
	Expr Expr
}
