//go:build windows

package vk

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func libraryName() string {
	return "vulkan-1.dll"
}

func openLibrary() (uintptr, error) {
	handle, err := windows.LoadLibrary(libraryName())
	if err != nil || handle == 0 {
		return 0, fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	return uintptr(handle), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("vk: symbol %s: %v", name, err)
	}
	return addr, nil
}

func closeLibrary(handle uintptr) {
	if handle != 0 {
		windows.FreeLibrary(windows.Handle(handle))
	}
}
