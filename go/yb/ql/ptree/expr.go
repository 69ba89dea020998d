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

type (
	// Expr is a typed expression produced by semantic analysis. Expression
	// subtrees may be shared across operations; the executor only reads
	// them.
	Expr interface {
		iExpr()
	}

	// Literal is a constant the analyzer has already folded to a wire value.
	Literal struct {
		Value *qlpb.QLValue
	}

	// ColumnRef references a resolved column.
	ColumnRef struct {
		Desc *ColumnDesc
	}

	// BindVar is a statement bind marker.
	BindVar struct {
		ID   int32
		Name string
	}

	// BCall is a builtin function call.
	BCall struct {
		Name string
		Args []Expr
	}

	// List is an ordered expression list, as on the right-hand side of IN.
	List struct {
		Elems []Expr
	}
)

func (*Literal) iExpr()   {}
func (*ColumnRef) iExpr() {}
func (*BindVar) iExpr()   {}
func (*BCall) iExpr()     {}
func (*List) iExpr()      {}
