// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package dl

import "github.com/ebitengine/purego"

func platformOpen(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func platformSym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
