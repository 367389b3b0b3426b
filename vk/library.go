package vk

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// bootstrapSymbol is the single exported symbol used to obtain the
// library-tier resolver.
const bootstrapSymbol = "vkGetInstanceProcAddr"

// LibraryCommands is the library-tier function table, resolved through the
// bootstrap resolver with a null instance. Immutable after construction.
type LibraryCommands struct {
	EnumerateInstanceExtensionProperties func(layerName *byte, count *uint32, properties *ExtensionProperties) Result
	EnumerateInstanceLayerProperties     func(count *uint32, properties *LayerProperties) Result
	CreateInstance                       func(info *InstanceCreateInfo, allocator unsafe.Pointer, instance *Instance) Result

	// EnumerateInstanceVersion is absent on 1.0 loaders and left nil there.
	EnumerateInstanceVersion func(version *uint32) Result
}

// Library owns the process-wide mapping of the Vulkan shared library and
// the library-tier command table. Every function pointer resolved through
// it is invalid once Close is called, so Close must come last in any
// teardown sequence.
type Library struct {
	LibraryCommands

	handle   uintptr
	procAddr func(instance Instance, name string) uintptr
}

// OpenLibrary maps the platform's Vulkan shared library, fetches the
// bootstrap resolver and resolves the library tier. Loaded exactly once
// per Library value; there is no reload.
func OpenLibrary() (*Library, error) {
	handle, err := openLibrary()
	if err != nil {
		return nil, err
	}
	sym, err := lookupSymbol(handle, bootstrapSymbol)
	if err != nil {
		closeLibrary(handle)
		return nil, fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}

	lib := &Library{handle: handle}
	purego.RegisterFunc(&lib.procAddr, sym)

	err = bind(func(name string) uintptr { return lib.procAddr(NullHandle, name) }, []command{
		{name: "vkEnumerateInstanceExtensionProperties", fn: &lib.EnumerateInstanceExtensionProperties},
		{name: "vkEnumerateInstanceLayerProperties", fn: &lib.EnumerateInstanceLayerProperties},
		{name: "vkCreateInstance", fn: &lib.CreateInstance},
		{name: "vkEnumerateInstanceVersion", fn: &lib.EnumerateInstanceVersion, optional: true},
	})
	if err != nil {
		closeLibrary(handle)
		return nil, err
	}
	return lib, nil
}

// ResolveInstanceCommands resolves the instance-tier table scoped to the
// given instance. On error the partially resolved table is returned so the
// caller can still tear the instance down if DestroyInstance was bound.
func (l *Library) ResolveInstanceCommands(instance Instance) (*InstanceCommands, error) {
	ic := &InstanceCommands{}
	err := bind(func(name string) uintptr { return l.procAddr(instance, name) }, []command{
		{name: "vkDestroyInstance", fn: &ic.DestroyInstance},
		{name: "vkEnumeratePhysicalDevices", fn: &ic.EnumeratePhysicalDevices},
		{name: "vkEnumerateDeviceExtensionProperties", fn: &ic.EnumerateDeviceExtensionProperties},
		{name: "vkEnumerateDeviceLayerProperties", fn: &ic.EnumerateDeviceLayerProperties},
		{name: "vkGetPhysicalDeviceQueueFamilyProperties", fn: &ic.GetPhysicalDeviceQueueFamilyProperties},
		{name: "vkGetPhysicalDeviceFeatures", fn: &ic.GetPhysicalDeviceFeatures},
		{name: "vkGetPhysicalDeviceProperties", fn: &ic.GetPhysicalDeviceProperties},
		{name: "vkGetPhysicalDeviceMemoryProperties", fn: &ic.GetPhysicalDeviceMemoryProperties},
		{name: "vkCreateDevice", fn: &ic.CreateDevice},
		{name: "vkGetDeviceProcAddr", fn: &ic.getDeviceProcAddr},
	})
	return ic, err
}

// Close unloads the shared library and invalidates every function resolved
// from it. The owning bootstrap calls this exactly once, after all
// dependent instances and devices are gone.
func (l *Library) Close() {
	if l.handle != 0 {
		closeLibrary(l.handle)
	}
	*l = Library{}
}
