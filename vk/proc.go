package vk

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

// ErrNotInstalled reports that the Vulkan shared library or its bootstrap
// symbol could not be found. Fatal, never retried.
var ErrNotInstalled = errors.New("vk: vulkan library not installed")

// command pairs a native entry-point name with the typed function field it
// resolves into. Optional commands may be absent on older drivers and are
// left nil.
type command struct {
	name     string
	fn       any
	optional bool
}

// bind resolves every command through the owning tier's resolver and binds
// the raw address to its typed callable. This is the only place an untyped
// symbol becomes a Go function; the signatures are frozen by the native
// schema on the table types.
func bind(resolve func(name string) uintptr, commands []command) error {
	for _, c := range commands {
		addr := resolve(c.name)
		if addr == 0 {
			if c.optional {
				continue
			}
			return fmt.Errorf("vk: command %s not present", c.name)
		}
		purego.RegisterFunc(c.fn, addr)
	}
	return nil
}
