/*
Copyright 2025 The Viewdex Authors.

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

// Package vderrors provides error values that carry a Code, plus helpers to
// wrap errors without losing the code of the root cause. Stack traces come
// from github.com/pkg/errors.
package vderrors

import (
	"github.com/pkg/errors"
)

// codedError attaches a Code to an underlying error.
type codedError struct {
	code Code
	err  error
}

func (c *codedError) Error() string { return c.err.Error() }

// Unwrap supports the standard errors.Is/As chains.
func (c *codedError) Unwrap() error { return c.err }

// Cause supports github.com/pkg/errors chains.
func (c *codedError) Cause() error { return c.err }

// New returns an error with the given code and message, annotated with the
// call stack.
func New(code Code, message string) error {
	return &codedError{code: code, err: errors.New(message)}
}

// Errorf returns a formatted error with the given code, annotated with the
// call stack.
func Errorf(code Code, format string, args ...interface{}) error {
	return &codedError{code: code, err: errors.Errorf(format, args...)}
}

// Wrapf annotates err with a message, preserving err's code. It returns nil
// if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &codedError{code: CodeOf(err), err: errors.Wrapf(err, format, args...)}
}

// CodeOf returns the code of the first coded error in err's chain, or
// CodeUnknown if there is none. A nil error has CodeOK.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	for e := err; e != nil; e = unwrap(e) {
		if coded, ok := e.(*codedError); ok {
			return coded.code
		}
	}
	return CodeUnknown
}

func unwrap(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Cause() error }:
		return e.Cause()
	default:
		return nil
	}
}
