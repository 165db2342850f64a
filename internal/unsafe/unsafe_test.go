// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	tests := [][2]string{
		{"Hello\x00", "Hello"},
		{"\x00", ""},
		{"unterminated", "unterminated"},
	}
	for _, test := range tests {
		got := GoString([]byte(test[0]))
		if exp := test[1]; exp != got {
			t.Errorf("expected %q got %q", exp, got)
		}
	}
}

func TestCString(t *testing.T) {
	assert.Equal(t, []byte("u_color\x00"), CString("u_color"))
	assert.Equal(t, []byte("u_color\x00"), CString("u_color\x00"))
	assert.Equal(t, []byte{0}, CString(""))
}

func TestStringAt(t *testing.T) {
	b := []byte("OpenGL ES 3.2 Mesa\x00garbage")
	assert.Equal(t, "OpenGL ES 3.2 Mesa", StringAt(&b[0]))
	assert.Empty(t, StringAt(nil))
}

func TestBytesView(t *testing.T) {
	assert.Nil(t, BytesView([]float32(nil)))
	v := BytesView([]uint16{0x0102, 0x0304, 0x0506})
	assert.Len(t, v, 6)
	f := BytesView([]float32{1, 2})
	assert.Len(t, f, 8)
}
