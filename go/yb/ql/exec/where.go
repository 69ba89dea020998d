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

// Package exec lowers analyzed QL statements into tablet-server requests.
//
// The WHERE clause of a statement arrives as disjoint operation lists,
// pre-sorted by the analyzer. Lowering classifies them into exact key
// bindings (routable without a scan), bounds on the partition-hash token,
// and a residual conjunctive predicate the server evaluates per row. The
// pass is synchronous, performs no I/O, and mutates only the caller's
// request; a request touched by a failed lowering must be discarded.
package exec

import (
	"github.com/Pedja-Djape/yugabyte-db/go/yb/log"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/partition"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/ql/ptree"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/ql/qlpb"
	"github.com/Pedja-Djape/yugabyte-db/go/yb/yberrors"
)

// WhereClauseToWriteRequest binds the WHERE clause of a write statement into
// req. Writes locate rows by exact primary-key values: hash columns bind
// into HashedColumnValues and range columns into RangeColumnValues, in the
// analyzer's order. Subscripted assignments become ColumnValues entries.
// Residual predicates are not supported on writes.
func WhereClauseToWriteRequest(
	req *qlpb.QLWriteRequest,
	keyWhereOps []ptree.ColumnOp,
	whereOps []ptree.ColumnOp,
	subcolWhereOps []ptree.SubscriptedColumnOp,
) error {
	// Setup the key columns.
	for i := range keyWhereOps {
		op := &keyWhereOps[i]
		desc := op.Desc
		var colExpr *qlpb.QLExpression
		switch {
		case desc.IsHash():
			colExpr = req.AddHashedColumnValue()
		case desc.IsPrimary():
			colExpr = req.AddRangeColumnValue()
		default:
			log.Fatalf("unexpected non primary key column %q in this context", desc.Name)
		}
		if err := PTExprToRequest(op.Expr, colExpr); err != nil {
			return err
		}
	}

	if len(whereOps) != 0 {
		log.Fatalf("server doesn't support range operation yet")
	}

	// Setup the rest of the columns.
	for i := range subcolWhereOps {
		op := &subcolWhereOps[i]
		colValue := req.AddColumnValue()
		colValue.ColumnID = op.Desc.ID
		for _, arg := range op.Args {
			if err := PTExprToRequest(arg, colValue.AddSubscriptArg()); err != nil {
				return err
			}
		}
		if err := PTExprToRequest(op.Expr, colValue.MutableExpr()); err != nil {
			return err
		}
	}

	return nil
}

// WhereClauseToReadRequest lowers the WHERE clause of a select statement
// into req. noResults reports that the clause provably selects no rows, in
// which case the caller short-circuits the statement without dispatching;
// the request fields written so far are meaningless then.
func WhereClauseToReadRequest(
	req *qlpb.QLReadRequest,
	keyWhereOps []ptree.ColumnOp,
	whereOps []ptree.ColumnOp,
	subcolWhereOps []ptree.SubscriptedColumnOp,
	partitionKeyOps []ptree.PartitionKeyOp,
	funcOps []ptree.FuncOp,
) (noResults bool, err error) {
	// Setup the lower/upper bounds on the partition key -- if any.
	if noResults, err = reduceTokenOps(req, partitionKeyOps); noResults || err != nil {
		return noResults, err
	}

	// Try to set up keyWhereOps as the request's hash key columns. This may
	// come up empty.
	keyOpsAreSet, noResults, err := bindReadKeys(req, keyWhereOps)
	if noResults || err != nil {
		return noResults, err
	}

	// Skip generation of the query condition if the where clause is empty.
	if keyOpsAreSet && len(whereOps) == 0 && len(subcolWhereOps) == 0 && len(funcOps) == 0 {
		return false, nil
	}

	// Setup the where clause.
	wherePB := req.MutableWhereCondition()
	wherePB.Op = qlpb.OpAnd
	if !keyOpsAreSet {
		for i := range keyWhereOps {
			if err := whereOpToCondition(wherePB.AddConditionOperand(), &keyWhereOps[i]); err != nil {
				return false, err
			}
		}
	}
	for i := range whereOps {
		if err := whereOpToCondition(wherePB.AddConditionOperand(), &whereOps[i]); err != nil {
			return false, err
		}
	}
	for i := range subcolWhereOps {
		if err := whereSubColOpToCondition(wherePB.AddConditionOperand(), &subcolWhereOps[i]); err != nil {
			return false, err
		}
	}
	for i := range funcOps {
		if err := funcOpToCondition(wherePB.AddConditionOperand(), &funcOps[i]); err != nil {
			return false, err
		}
	}

	return false, nil
}

// reduceTokenOps folds token(...) comparisons into at most one half-open
// interval [HashCode, MaxHashCode) on the request. The analyzer provides at
// most one lower and one upper constraint after canonicalization; ops are
// applied in order and a later write of the same bound overwrites an
// earlier one.
func reduceTokenOps(req *qlpb.QLReadRequest, partitionKeyOps []ptree.PartitionKeyOp) (noResults bool, err error) {
	for i := range partitionKeyOps {
		op := &partitionKeyOps[i]
		var exprPB qlpb.QLExpression
		if err := PTExprToRequest(op.Expr, &exprPB); err != nil {
			return false, err
		}
		result, err := qlpb.Evaluate(&exprPB, qlpb.QLTableRow{})
		if err != nil {
			return false, err
		}
		if result.Kind() != qlpb.KindInt64 {
			return false, yberrors.Errorf(yberrors.InvalidArgument,
				"token comparison value must be a BIGINT, have %v", result.Kind())
		}
		hashCode := partition.CqlToHashCode(result.Int64())

		// Intervals are start-inclusive, end-exclusive: [hash, maxHash).
		switch op.Op {
		case qlpb.OpGreaterThan:
			if hashCode == partition.MaxHashCode {
				// Token hash greater than the max implies no results.
				return true, nil
			}
			req.SetHashCode(hashCode + 1)
		case qlpb.OpGreaterThanEqual:
			req.SetHashCode(hashCode)
		case qlpb.OpLessThan:
			req.SetMaxHashCode(hashCode)
		case qlpb.OpLessThanEqual:
			if hashCode != partition.MaxHashCode {
				req.SetMaxHashCode(hashCode + 1)
			} // Token hash at most the max adds no real restriction.
		case qlpb.OpEqual:
			req.SetHashCode(hashCode)
			if hashCode != partition.MaxHashCode {
				req.SetMaxHashCode(hashCode + 1)
			} // Token hash equality with the max value needs no upper bound.
		default:
			log.Fatalf("unsupported operator %v for token-based partition key condition", op.Op)
		}
	}
	return false, nil
}

// bindReadKeys installs keyWhereOps as the request's hashed-column bindings.
// Every op must describe a hash column; the analyzer packages range-key ops
// of a read as residual predicates instead.
//
// IN predicates are specialized on the lowered value list: an empty list
// can match nothing, a singleton degrades to equality, and two or more
// elements abandon key binding entirely -- the bindings are cleared and
// keyOpsAreSet reports false so every key op is re-emitted as a residual
// conjunct. The storage engine routes on single-valued hash columns only;
// a multi-valued IN forces a scatter, implemented here by filtering.
func bindReadKeys(req *qlpb.QLReadRequest, keyWhereOps []ptree.ColumnOp) (keyOpsAreSet bool, noResults bool, err error) {
	keyOpsAreSet = true
	for i := range keyWhereOps {
		op := &keyWhereOps[i]
		desc := op.Desc
		if !desc.IsHash() {
			log.Fatalf("unexpected non partition column %q in this context", desc.Name)
		}
		colExpr := req.AddHashedColumnValue()
		log.V(3).Infof("READ request, column id = %v", desc.ID)
		if err := PTExprToRequest(op.Expr, colExpr); err != nil {
			return false, false, err
		}
		if op.Op == qlpb.OpIn {
			elems := colExpr.Value.List()
			switch len(elems) {
			case 0:
				// An empty IN condition guarantees no results.
				return false, true, nil
			case 1:
				// An IN condition with one element is treated as equality.
				colExpr.Value = elems[0]
			default:
				// Filtering for now. TODO: route multi-valued IN as a
				// fan-out across partitions instead.
				keyOpsAreSet = false
				req.ClearHashedColumnValues()
			}
			if !keyOpsAreSet {
				break
			}
		}
	}
	return keyOpsAreSet, false, nil
}

// whereOpToCondition emits a column comparison as a residual condition:
// operator, column reference, lowered right-hand expression.
func whereOpToCondition(condition *qlpb.QLCondition, colOp *ptree.ColumnOp) error {
	condition.Op = colOp.Op

	// Operand 1: the column.
	desc := colOp.Desc
	log.V(3).Infof("WHERE condition, column id = %v", desc.ID)
	condition.AddOperand().SetColumnID(desc.ID)

	// Operand 2: the expression.
	return PTExprToRequest(colOp.Expr, condition.AddOperand())
}

// whereSubColOpToCondition emits a subscripted-column comparison as a
// residual condition; the left operand carries the column id and the
// lowered subscript arguments.
func whereSubColOpToCondition(condition *qlpb.QLCondition, colOp *ptree.SubscriptedColumnOp) error {
	condition.Op = colOp.Op

	// Operand 1: the subscripted column.
	desc := colOp.Desc
	log.V(3).Infof("WHERE condition, sub-column with id = %v", desc.ID)
	subCol := &qlpb.QLSubscriptedColumn{ColumnID: desc.ID}
	for _, arg := range colOp.Args {
		if err := PTExprToRequest(arg, subCol.AddSubscriptArg()); err != nil {
			return err
		}
	}
	condition.AddOperand().SubscriptedCol = subCol

	// Operand 2: the expression.
	return PTExprToRequest(colOp.Expr, condition.AddOperand())
}

// funcOpToCondition emits a builtin-call comparison as a residual condition.
func funcOpToCondition(condition *qlpb.QLCondition, funcOp *ptree.FuncOp) error {
	condition.Op = funcOp.Op

	// Operand 1: the function call.
	if err := PTExprToRequest(funcOp.Func, condition.AddOperand()); err != nil {
		return err
	}

	// Operand 2: the expression.
	return PTExprToRequest(funcOp.Value, condition.AddOperand())
}
