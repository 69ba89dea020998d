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
	"github.com/Pedja-Djape/yugabyte-db/go/yb/yberrors"
)

// QLTableRow is a row keyed by column id. The empty row is used to fold
// constant expressions at plan time.
type QLTableRow map[int32]*QLValue

// Evaluate folds a wire expression against a row. Values evaluate to
// themselves and column references look up the row; anything else cannot be
// folded here.
func Evaluate(expr *QLExpression, row QLTableRow) (*QLValue, error) {
	switch {
	case expr == nil:
		return nil, yberrors.New(yberrors.Internal, "cannot evaluate nil expression")
	case expr.Value != nil:
		return expr.Value, nil
	case expr.ColumnID != nil:
		value, ok := row[*expr.ColumnID]
		if !ok {
			return nil, yberrors.Errorf(yberrors.InvalidArgument,
				"column %d absent from row, expression is not constant", *expr.ColumnID)
		}
		return value, nil
	default:
		return nil, yberrors.New(yberrors.Unimplemented, "expression cannot be folded at plan time")
	}
}
