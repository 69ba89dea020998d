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

// Package qlpb holds the in-memory mirror of the tablet-server wire schema
// for QL statements: requests, expressions, conditions and values. Field
// sets and add/mutable-style mutators follow the wire records so the
// lowering code reads the same as the schema.
package qlpb

// QLExpression is a wire expression. Exactly one variant field is set:
// a concrete value, a column reference, a subscripted column reference,
// a builtin call, a nested condition, or a bind-variable position.
type QLExpression struct {
	Value          *QLValue
	ColumnID       *int32
	SubscriptedCol *QLSubscriptedColumn
	BCall          *QLBCall
	Condition      *QLCondition
	BindID         *int32
}

// SetColumnID makes the expression a column reference.
func (e *QLExpression) SetColumnID(id int32) {
	e.ColumnID = &id
}

// SetBindID makes the expression a bind-variable reference.
func (e *QLExpression) SetBindID(id int32) {
	e.BindID = &id
}

// MutableCondition returns the nested condition, allocating it if unset.
func (e *QLExpression) MutableCondition() *QLCondition {
	if e.Condition == nil {
		e.Condition = &QLCondition{}
	}
	return e.Condition
}

// QLSubscriptedColumn references an element of a collection column, e.g.
// m['k'] for a map column m.
type QLSubscriptedColumn struct {
	ColumnID      int32
	SubscriptArgs []*QLExpression
}

// AddSubscriptArg appends and returns a fresh subscript argument.
func (c *QLSubscriptedColumn) AddSubscriptArg() *QLExpression {
	arg := &QLExpression{}
	c.SubscriptArgs = append(c.SubscriptArgs, arg)
	return arg
}

// QLBCall is a builtin function call.
type QLBCall struct {
	Name     string
	Operands []*QLExpression
}

// AddOperand appends and returns a fresh call operand.
func (b *QLBCall) AddOperand() *QLExpression {
	operand := &QLExpression{}
	b.Operands = append(b.Operands, operand)
	return operand
}

// QLCondition is a predicate-tree node: a comparison or logical operator
// over operand expressions.
type QLCondition struct {
	Op       Operator
	Operands []*QLExpression
}

// AddOperand appends and returns a fresh operand expression.
func (c *QLCondition) AddOperand() *QLExpression {
	operand := &QLExpression{}
	c.Operands = append(c.Operands, operand)
	return operand
}

// AddConditionOperand appends an operand holding a fresh nested condition
// and returns the nested condition.
func (c *QLCondition) AddConditionOperand() *QLCondition {
	return c.AddOperand().MutableCondition()
}

// QLColumnValue assigns a value to a column, optionally at a subscripted
// position inside a collection column.
type QLColumnValue struct {
	ColumnID      int32
	SubscriptArgs []*QLExpression
	Expr          *QLExpression
}

// AddSubscriptArg appends and returns a fresh subscript argument.
func (cv *QLColumnValue) AddSubscriptArg() *QLExpression {
	arg := &QLExpression{}
	cv.SubscriptArgs = append(cv.SubscriptArgs, arg)
	return arg
}

// MutableExpr returns the assigned expression, allocating it if unset.
func (cv *QLColumnValue) MutableExpr() *QLExpression {
	if cv.Expr == nil {
		cv.Expr = &QLExpression{}
	}
	return cv.Expr
}

// QLReadRequest is the tablet-server request for a select statement.
//
// HashCode and MaxHashCode, when set, bound the partition hash of candidate
// rows to the half-open interval [HashCode, MaxHashCode). Nil means the
// corresponding bound is absent.
type QLReadRequest struct {
	HashedColumnValues []*QLExpression
	HashCode           *uint16
	MaxHashCode        *uint16
	WhereExpr          *QLExpression
}

// AddHashedColumnValue appends and returns a fresh hashed-column binding.
func (r *QLReadRequest) AddHashedColumnValue() *QLExpression {
	expr := &QLExpression{}
	r.HashedColumnValues = append(r.HashedColumnValues, expr)
	return expr
}

// ClearHashedColumnValues drops all hashed-column bindings.
func (r *QLReadRequest) ClearHashedColumnValues() {
	r.HashedColumnValues = nil
}

// SetHashCode sets the inclusive lower bound of the partition-hash interval.
func (r *QLReadRequest) SetHashCode(hash uint16) {
	r.HashCode = &hash
}

// SetMaxHashCode sets the exclusive upper bound of the partition-hash interval.
func (r *QLReadRequest) SetMaxHashCode(hash uint16) {
	r.MaxHashCode = &hash
}

// MutableWhereCondition returns the root condition of the residual where
// expression, allocating the expression if unset.
func (r *QLReadRequest) MutableWhereCondition() *QLCondition {
	if r.WhereExpr == nil {
		r.WhereExpr = &QLExpression{}
	}
	return r.WhereExpr.MutableCondition()
}

// QLWriteRequest is the tablet-server request for an insert, update or
// delete statement. Writes carry exact key bindings only; they do not
// support residual filtering predicates.
type QLWriteRequest struct {
	HashedColumnValues []*QLExpression
	RangeColumnValues  []*QLExpression
	ColumnValues       []*QLColumnValue
}

// AddHashedColumnValue appends and returns a fresh hashed-column binding.
func (r *QLWriteRequest) AddHashedColumnValue() *QLExpression {
	expr := &QLExpression{}
	r.HashedColumnValues = append(r.HashedColumnValues, expr)
	return expr
}

// AddRangeColumnValue appends and returns a fresh range-column binding.
func (r *QLWriteRequest) AddRangeColumnValue() *QLExpression {
	expr := &QLExpression{}
	r.RangeColumnValues = append(r.RangeColumnValues, expr)
	return expr
}

// AddColumnValue appends and returns a fresh column assignment.
func (r *QLWriteRequest) AddColumnValue() *QLColumnValue {
	cv := &QLColumnValue{}
	r.ColumnValues = append(r.ColumnValues, cv)
	return cv
}
