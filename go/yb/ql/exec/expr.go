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

package exec

import (
	"github.com/Pedja-Djape/yugabyte-db/go/yb/ql/ptree"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/ql/qlpb"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/yberrors"
)

// PTExprToRequest lowers an analyzed expression into the wire expression out.
// Literal values are shared with the analyzed tree, not copied.
func PTExprToRequest(expr ptree.Expr, out *qlpb.QLExpression) error {
	switch node := expr.(type) {
	case *ptree.Literal:
		if node.Value == nil {
			return yberrors.New(yberrors.Internal, "literal carries no value")
		}
		out.Value = node.Value
		return nil

	case *ptree.ColumnRef:
		out.SetColumnID(node.Desc.ID)
		return nil

	case *ptree.BindVar:
		out.SetBindID(node.ID)
		return nil

	case *ptree.BCall:
		bcall := &qlpb.QLBCall{Name: node.Name}
		for _, arg := range node.Args {
			if err := PTExprToRequest(arg, bcall.AddOperand()); err != nil {
				return err
			}
		}
		out.BCall = bcall
		return nil

	case *ptree.List:
		// IN operands travel as a single list value; each element must
		// therefore lower to a concrete value.
		elems := make([]*qlpb.QLValue, 0, len(node.Elems))
		for _, elem := range node.Elems {
			var lowered qlpb.QLExpression
			if err := PTExprToRequest(elem, &lowered); err != nil {
				return err
			}
			if lowered.Value == nil {
				return yberrors.New(yberrors.InvalidArgument,
					"list elements must be constant values")
			}
			elems = append(elems, lowered.Value)
		}
		out.Value = qlpb.ListValue(elems...)
		return nil

	case nil:
		return yberrors.New(yberrors.Internal, "cannot lower nil expression")

	default:
		return yberrors.Errorf(yberrors.Unimplemented, "expression %T cannot be lowered", expr)
	}
}
