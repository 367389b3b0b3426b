package vk

import "unsafe"

// DeviceCommands is the device-tier function table, resolved through
// vkGetDeviceProcAddr scoped to one logical device. Immutable after
// construction and owned by whoever owns the device handle.
type DeviceCommands struct {
	DestroyDevice  func(device Device, allocator unsafe.Pointer)
	GetDeviceQueue func(device Device, family, index uint32, queue *Queue)
	QueueWaitIdle  func(queue Queue) Result
	DeviceWaitIdle func(device Device) Result
}
