// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/glbind"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"libEGL.so.1", []string{"libEGL.so.1"}},
		{"libEGL.so.1, libGL.so.1,", []string{"libEGL.so.1", "libGL.so.1"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, splitList(test.in), "splitList(%q)", test.in)
	}
}

func TestPrintInfo(t *testing.T) {
	var out strings.Builder
	printInfo(&out, 0x21, glbind.DisplayInfo{
		Vendor:        "Mesa Project",
		Version:       "1.5",
		ClientAPIs:    "OpenGL OpenGL_ES",
		ClientVersion: 3,
		Extensions:    []string{"EGL_KHR_image_base", "EGL_EXT_buffer_age"},
	})
	want := `visual id:      0x21
vendor:         Mesa Project
version:        1.5
client apis:    OpenGL OpenGL_ES
client version: 3
extensions:
	EGL_KHR_image_base
	EGL_EXT_buffer_age
`
	assert.Equal(t, want, out.String())
}
