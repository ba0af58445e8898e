// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBuiltinExtensions(t *testing.T) {
	d := New()
	assert.Equal(t, C, d.Detect("foo.c", nil))
	assert.Equal(t, CXX, d.Detect("foo.cpp", nil))
	assert.Equal(t, CXX, d.Detect("foo.hxx", nil))
	assert.Equal(t, JAVA, d.Detect("Foo.java", nil))
	assert.Equal(t, ASPECTJ, d.Detect("Foo.aj", nil))
	assert.Equal(t, CSHARP, d.Detect("Foo.cs", nil))
	assert.Equal(t, Unknown, d.Detect("README.md", nil))
}

func TestDetectHeaderAmbiguity(t *testing.T) {
	d := New()
	assert.Equal(t, C, d.Detect("foo.h", nil))
	d.CXXHeader = true
	assert.Equal(t, CXX, d.Detect("foo.h", nil))
}

func TestDetectCaseSensitiveByDefault(t *testing.T) {
	d := New()
	assert.Equal(t, CXX, d.Detect("foo.C", nil))
	assert.Equal(t, Unknown, d.Detect("foo.CPP", nil))
	d.WindowsCase = true
	assert.Equal(t, CXX, d.Detect("foo.CPP", nil))
}

func TestDetectUserOverrideTakesPrecedence(t *testing.T) {
	d := New()
	d.Register(".c", JAVA)
	assert.Equal(t, JAVA, d.Detect("foo.c", nil))
	assert.Equal(t, C, d.Detect("foo.cpp", nil))
}

func TestDetectUnknownWithoutSniffing(t *testing.T) {
	d := New()
	assert.Equal(t, Unknown, d.Detect("noext", []byte("#include <stdio.h>\nint main(){}\n")))
}
