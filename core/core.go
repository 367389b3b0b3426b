// Package core manages the lifetime of a Vulkan connection: loading the
// shared library, creating an instance, querying adapters and creating
// logical devices. Teardown runs strictly in reverse of creation, the
// device goes first, then the instance, then the library mapping.
package core

import (
	"github.com/vkload/vkload/device"
	"github.com/vkload/vkload/vk"
)

// Instance describes an established Vulkan connection and its
// adapter queries. Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each available adapter
	// with the data of those adapters aggregated for presentation.
	PhysicalDevicesInfo() []device.PhysicalDeviceInfo

	// AvailableDevices returns the adapter handles enumerated when the
	// connection was established.
	AvailableDevices() []vk.PhysicalDevice

	// EnumerateAdapters re-queries the driver and refreshes the set
	// AvailableDevices returns.
	EnumerateAdapters() ([]vk.PhysicalDevice, error)

	// DeviceExtensions lists the extensions the given adapter supports.
	DeviceExtensions(d vk.PhysicalDevice) ([]vk.ExtensionProperties, error)

	// DeviceLayers lists the layers the given adapter reports.
	DeviceLayers(d vk.PhysicalDevice) ([]vk.LayerProperties, error)

	// QueueFamilyProperties describes the queue families of the adapter.
	QueueFamilyProperties(d vk.PhysicalDevice) []vk.QueueFamilyProperties

	// Features reports the optional capabilities the adapter supports.
	Features(d vk.PhysicalDevice) vk.PhysicalDeviceFeatures

	// Properties reports the identity and limits of the adapter.
	Properties(d vk.PhysicalDevice) vk.PhysicalDeviceProperties

	// MemoryProperties reports the memory types and heaps of the adapter.
	MemoryProperties(d vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties

	// CreateDevice creates a logical device on the adapter. The returned
	// device must be destroyed before this Instance is.
	CreateDevice(d vk.PhysicalDevice, cfg DeviceConfiguration) (device.Device, error)

	// Destroy tears the connection down and releases the library mapping
	// it owns. All devices created from it must be destroyed first.
	Destroy()
}
