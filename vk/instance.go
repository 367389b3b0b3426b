package vk

import "unsafe"

// InstanceCommands is the instance-tier function table, resolved through
// the bootstrap resolver scoped to one live instance. Immutable after
// construction and owned by whoever owns the instance handle.
type InstanceCommands struct {
	DestroyInstance                        func(instance Instance, allocator unsafe.Pointer)
	EnumeratePhysicalDevices               func(instance Instance, count *uint32, devices *PhysicalDevice) Result
	EnumerateDeviceExtensionProperties     func(device PhysicalDevice, layerName *byte, count *uint32, properties *ExtensionProperties) Result
	EnumerateDeviceLayerProperties         func(device PhysicalDevice, count *uint32, properties *LayerProperties) Result
	GetPhysicalDeviceQueueFamilyProperties func(device PhysicalDevice, count *uint32, properties *QueueFamilyProperties)
	GetPhysicalDeviceFeatures              func(device PhysicalDevice, features *PhysicalDeviceFeatures)
	GetPhysicalDeviceProperties            func(device PhysicalDevice, properties *PhysicalDeviceProperties)
	GetPhysicalDeviceMemoryProperties      func(device PhysicalDevice, properties *PhysicalDeviceMemoryProperties)
	CreateDevice                           func(device PhysicalDevice, info *DeviceCreateInfo, allocator unsafe.Pointer, out *Device) Result

	// getDeviceProcAddr is the device-tier resolver. It comes from the
	// instance table, not from the bootstrap.
	getDeviceProcAddr func(device Device, name string) uintptr
}

// ResolveDeviceCommands resolves the device-tier table scoped to the given
// device. On error the partially resolved table is returned so the caller
// can still tear the device down if DestroyDevice was bound.
func (ic *InstanceCommands) ResolveDeviceCommands(device Device) (*DeviceCommands, error) {
	dc := &DeviceCommands{}
	err := bind(func(name string) uintptr { return ic.getDeviceProcAddr(device, name) }, []command{
		{name: "vkDestroyDevice", fn: &dc.DestroyDevice},
		{name: "vkGetDeviceQueue", fn: &dc.GetDeviceQueue},
		{name: "vkQueueWaitIdle", fn: &dc.QueueWaitIdle},
		{name: "vkDeviceWaitIdle", fn: &dc.DeviceWaitIdle},
	})
	return dc, err
}
