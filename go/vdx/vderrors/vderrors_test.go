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

import (
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, CodeOf(nil))
	assert.Equal(t, CodeUnknown, CodeOf(io.EOF))

	err := New(CodeUnimplemented, "VIEW")
	assert.Equal(t, CodeUnimplemented, CodeOf(err))
	assert.Equal(t, "VIEW", err.Error())

	err = Errorf(CodeInvalidArgument, "bad mask length %d", 3)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
	assert.Equal(t, "bad mask length 3", err.Error())
}

func TestWrapfPreservesCode(t *testing.T) {
	root := New(CodeFailedPrecondition, "no specialized plan")
	wrapped := Wrapf(root, "view %q", "v1")

	require.Error(t, wrapped)
	assert.Equal(t, CodeFailedPrecondition, CodeOf(wrapped))
	assert.Equal(t, `view "v1": no specialized plan`, wrapped.Error())
	assert.Nil(t, Wrapf(nil, "ignored"))
}

func TestWrapfThroughForeignWrapping(t *testing.T) {
	root := New(CodeCanceled, "interrupted")
	foreign := errors.Wrap(root, "outer")
	assert.Equal(t, CodeCanceled, CodeOf(foreign))

	std := fmt.Errorf("outer: %w", root)
	assert.Equal(t, CodeCanceled, CodeOf(std))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "UNIMPLEMENTED", CodeUnimplemented.String())
	assert.Equal(t, "UNKNOWN", Code(999).String())
}
