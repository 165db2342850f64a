// SPDX-License-Identifier: Unlicense OR MIT

package dl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func platformOpen(name string) (uintptr, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %v", name, err)
	}
	return uintptr(h), nil
}

func platformSym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}
