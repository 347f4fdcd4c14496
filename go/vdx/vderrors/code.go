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

package vderrors

// Code categorizes an error the way gRPC status codes do. Only the subset
// this codebase produces is defined.
type Code int32

const (
	// CodeOK means no error; it is never attached to an error value.
	CodeOK Code = iota
	// CodeUnknown is the code of errors that carry no code of their own.
	CodeUnknown
	// CodeCanceled indicates the operation was canceled by the caller.
	CodeCanceled
	// CodeInvalidArgument indicates the caller specified an invalid
	// argument, such as a malformed query.
	CodeInvalidArgument
	// CodeFailedPrecondition indicates the system is not in a state
	// required for the operation.
	CodeFailedPrecondition
	// CodeUnimplemented indicates the operation is not supported.
	CodeUnimplemented
	// CodeInternal indicates an invariant expected by the underlying
	// system has been broken.
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeCanceled:
		return "CANCELED"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeUnimplemented:
		return "UNIMPLEMENTED"
	case CodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
