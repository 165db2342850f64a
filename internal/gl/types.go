// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Buffer  struct{ V uint }
	Program struct{ V uint }
	Shader  struct{ V uint }
	Texture struct{ V uint }
	Uniform struct{ V int }
	// Attribute is an attribute location as returned by
	// glGetAttribLocation.
	Attribute struct{ V int }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (b Buffer) Equal(o Buffer) bool {
	return b == o
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (p Program) Equal(o Program) bool {
	return p == o
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (t Texture) Equal(o Texture) bool {
	return t == o
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (a Attribute) Valid() bool {
	return a.V != -1
}
