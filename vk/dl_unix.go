//go:build !windows

package vk

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryName selects the fixed shared-library name for the target OS.
// No search-path configuration is exposed; the dynamic linker decides.
func libraryName() string {
	switch runtime.GOOS {
	case "android":
		return "libvulkan.so"
	case "darwin":
		return "libvulkan.1.dylib"
	default:
		return "libvulkan.so.1"
	}
}

func openLibrary() (uintptr, error) {
	handle, err := purego.Dlopen(libraryName(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	return handle, nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, fmt.Errorf("vk: symbol %s: %v", name, err)
	}
	return addr, nil
}

func closeLibrary(handle uintptr) {
	if handle != 0 {
		purego.Dlclose(handle)
	}
}
