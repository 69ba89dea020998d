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

package yberrors

// Code classifies an error the way the server's RPC layer reports it.
type Code int

// All the error codes
const (
	OK Code = iota
	Unknown

	// bad user input
	InvalidArgument
	OutOfRange

	// state of the world does not allow the operation
	NotFound
	AlreadyExists
	FailedPrecondition

	// valid request the code cannot serve yet
	Unimplemented

	// bugs and broken invariants
	Internal

	// transient server conditions
	Unavailable

	// No code should be added below NumOfCodes
	NumOfCodes
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case OutOfRange:
		return "OUT_OF_RANGE"
	case NotFound:
		return "NOT_FOUND"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	case FailedPrecondition:
		return "FAILED_PRECONDITION"
	case Unimplemented:
		return "UNIMPLEMENTED"
	case Internal:
		return "INTERNAL"
	case Unavailable:
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// ErrorWithCode is implemented by errors that carry a Code.
type ErrorWithCode interface {
	ErrorCode() Code
}
