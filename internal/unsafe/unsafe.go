// SPDX-License-Identifier: Unlicense OR MIT

// Package unsafe converts between Go values and the C memory layout
// of the native GL and EGL entry points.
package unsafe

import (
	"strings"
	"unsafe"
)

// BytesView returns a byte slice view of a slice.
func BytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	sz := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// CString returns s as a NUL-terminated byte slice. A trailing NUL
// already present in s is not duplicated.
func CString(s string) []byte {
	if strings.HasSuffix(s, "\x00") {
		return []byte(s)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString convert a NUL-terminated C string
// to a Go string.
func GoString(s []byte) string {
	for i, v := range s {
		if v == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}

// StringAt copies the NUL-terminated string at p. A nil p is the empty
// string.
func StringAt(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
