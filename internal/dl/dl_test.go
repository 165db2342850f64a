// SPDX-License-Identifier: Unlicense OR MIT

package dl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform installs a loader that knows the given libraries and
// their symbols.
func fakePlatform(t *testing.T, libs map[string]map[string]uintptr) {
	t.Helper()
	handles := make(map[uintptr]map[string]uintptr)
	names := make(map[string]uintptr)
	next := uintptr(0x1000)
	for name, syms := range libs {
		handles[next] = syms
		names[name] = next
		next += 0x1000
	}
	origOpen, origSym := openLibrary, lookupSymbol
	t.Cleanup(func() {
		openLibrary, lookupSymbol = origOpen, origSym
	})
	openLibrary = func(name string) (uintptr, error) {
		if h, ok := names[name]; ok {
			return h, nil
		}
		return 0, fmt.Errorf("%s: cannot open shared object file", name)
	}
	lookupSymbol = func(h uintptr, name string) (uintptr, error) {
		if addr, ok := handles[h][name]; ok {
			return addr, nil
		}
		return 0, fmt.Errorf("%s: undefined symbol", name)
	}
}

func TestOpenFallsBack(t *testing.T) {
	fakePlatform(t, map[string]map[string]uintptr{
		"libGL.so.1": {"eglGetDisplay": 0xbeef},
	})
	lib, err := Open("libEGL.so.1", "libGL.so.1")
	require.NoError(t, err)
	assert.Equal(t, "libGL.so.1", lib.Name)
	addr, err := lib.Sym("eglGetDisplay")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xbeef), addr)
}

func TestOpenFirstWins(t *testing.T) {
	fakePlatform(t, map[string]map[string]uintptr{
		"libEGL.so.1": {},
		"libGL.so.1":  {},
	})
	lib, err := Open("libEGL.so.1", "libGL.so.1")
	require.NoError(t, err)
	assert.Equal(t, "libEGL.so.1", lib.Name)
}

func TestOpenNoneAvailable(t *testing.T) {
	fakePlatform(t, nil)
	_, err := Open("libEGL.so.1", "libGL.so.1")
	require.Error(t, err)
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, []string{"libEGL.so.1", "libGL.so.1"}, lerr.Names)
	assert.Contains(t, err.Error(), "libGL.so.1")
	assert.Error(t, errors.Unwrap(err))
}

func TestOpenNoNames(t *testing.T) {
	_, err := Open()
	var lerr *LoadError
	assert.True(t, errors.As(err, &lerr))
}

func TestSymMissing(t *testing.T) {
	fakePlatform(t, map[string]map[string]uintptr{
		"libEGL.so.1": {"eglGetDisplay": 0x10},
	})
	lib, err := Open("libEGL.so.1")
	require.NoError(t, err)
	_, err = lib.Sym("eglBogus")
	var serr *SymbolError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "eglBogus", serr.Symbol)
	assert.Equal(t, "libEGL.so.1", serr.Library)
}

func TestResolve(t *testing.T) {
	fakePlatform(t, map[string]map[string]uintptr{
		"opengl32.dll": {"glClear": 0x20, "glEnable": 0x30},
	})
	lib, err := Open("opengl32.dll")
	require.NoError(t, err)
	getProc := func(name string) uintptr {
		switch name {
		case "glGenBuffers":
			return 0x40
		case "glEnable":
			// Some drivers return small sentinels instead of NULL.
			return 2
		}
		return 0
	}

	tests := []struct {
		name string
		want uintptr
	}{
		{"glGenBuffers", 0x40},
		{"glClear", 0x20},
		{"glEnable", 0x30},
	}
	for _, test := range tests {
		addr, err := Resolve(test.name, getProc, lib)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, addr, test.name)
	}

	_, err = Resolve("glBogus", getProc, nil, lib)
	var serr *SymbolError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "glBogus", serr.Symbol)

	addr, err := Resolve("glClear", nil, lib)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x20), addr)
}
