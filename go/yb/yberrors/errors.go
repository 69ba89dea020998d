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

// Package yberrors provides coded errors for the query layer.
//
// Errors created here carry a Code that survives wrapping; ErrorCode walks
// the chain and returns the first code it finds. Errors without a code
// report Unknown.
package yberrors

import (
	"errors"
	"fmt"
)

// New returns an error with the supplied message and code.
func New(code Code, message string) error {
	return &fundamental{
		msg:  message,
		code: code,
	}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, tagged with the supplied code.
func Errorf(code Code, format string, args ...any) error {
	return &fundamental{
		msg:  fmt.Sprintf(format, args...),
		code: code,
	}
}

// fundamental is an error that has a message and a code, but no caused-by chain.
type fundamental struct {
	msg  string
	code Code
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) ErrorCode() Code { return f.code }

// Wrap returns an error annotating err with the supplied message.
// If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{
		err: err,
		msg: message,
	}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrapping struct {
	err error
	msg string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.err.Error() }

func (w *wrapping) Unwrap() error { return w.err }

// ErrorCode returns the code of the first error in err's chain that carries
// one. A nil error reports OK; an uncoded error reports Unknown.
func ErrorCode(err error) Code {
	if err == nil {
		return OK
	}
	for err != nil {
		if coded, ok := err.(ErrorWithCode); ok {
			return coded.ErrorCode()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}
