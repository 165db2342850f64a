// SPDX-License-Identifier: Unlicense OR MIT

// Package dl locates platform shared libraries at runtime and resolves
// their entry points.
package dl

import (
	"fmt"
	"strings"
)

// Library is an open shared library. Libraries are never closed.
type Library struct {
	Name   string
	handle uintptr
}

// LoadError is returned by Open when none of the candidate libraries
// could be opened.
type LoadError struct {
	Names []string
	// Err is the error reported for the last candidate.
	Err error
}

// SymbolError reports an entry point the platform could not resolve.
type SymbolError struct {
	Library string
	Symbol  string
}

// ProcAddressFunc is a secondary loader such as eglGetProcAddress or
// wglGetProcAddress. It returns 0 for unknown names.
type ProcAddressFunc func(name string) uintptr

// Replaced in tests.
var (
	openLibrary  = platformOpen
	lookupSymbol = platformSym
)

// Open returns the first of names that the platform loader can open.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, &LoadError{Err: fmt.Errorf("no library names")}
	}
	var err error
	for _, name := range names {
		var h uintptr
		h, err = openLibrary(name)
		if err == nil && h != 0 {
			return &Library{Name: name, handle: h}, nil
		}
		if err == nil {
			err = fmt.Errorf("%s: nil handle", name)
		}
	}
	return nil, &LoadError{Names: names, Err: err}
}

// Sym returns the address of the named entry point.
func (l *Library) Sym(name string) (uintptr, error) {
	addr, err := lookupSymbol(l.handle, name)
	if err != nil || addr == 0 {
		return 0, &SymbolError{Library: l.Name, Symbol: name}
	}
	return addr, nil
}

// Resolve looks up name with getProc first, if non-nil, and falls back
// to direct lookup in each of libs in order.
func Resolve(name string, getProc ProcAddressFunc, libs ...*Library) (uintptr, error) {
	if getProc != nil {
		if addr := getProc(name); validProcAddress(addr) {
			return addr, nil
		}
	}
	var lib string
	for _, l := range libs {
		if l == nil {
			continue
		}
		if addr, err := l.Sym(name); err == nil {
			return addr, nil
		}
		lib = l.Name
	}
	return 0, &SymbolError{Library: lib, Symbol: name}
}

// validProcAddress filters the sentinel values some wglGetProcAddress
// implementations return instead of NULL.
func validProcAddress(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dl: no library could be loaded (tried %s): %v", strings.Join(e.Names, ", "), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *SymbolError) Error() string {
	if e.Library == "" {
		return fmt.Sprintf("dl: couldn't load function %q", e.Symbol)
	}
	return fmt.Sprintf("dl: couldn't load function %q from %s", e.Symbol, e.Library)
}
