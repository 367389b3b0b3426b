// Package device describes the physical adapters discovered through a
// connection and the logical-device surface created from one of them.
package device

import (
	"github.com/vkload/vkload/vk"
)

// PhysicalDeviceInfo describes available properties of a single adapter.
// It is a value snapshot assembled from driver queries, never cached by
// the core beyond the call that produced it.
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	APIVersion    string
	Name          string
	Type          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        vk.DeviceSize
	Features      vk.PhysicalDeviceFeatures
	QueueFamilies []QueueFamilyInfo
}

// QueueFamilyInfo is the snapshot of one queue family of an adapter.
type QueueFamilyInfo struct {
	Index      uint32
	QueueCount uint32
	Flags      string
}

// Device describes a created logical device. It must be destroyed before
// the connection that created it.
type Device interface {
	// Queue returns the queue at the given family and index. The handle
	// stays valid for the device's lifetime.
	Queue(family, index uint32) vk.Queue

	// QueueWaitIdle blocks until all work submitted to the queue completes.
	QueueWaitIdle(queue vk.Queue) error

	// WaitIdle blocks until every queue of the device is idle.
	WaitIdle() error

	// Destroy destroys the native device. The connection is untouched.
	Destroy()
}

// FindQueueFamily returns the index of the first queue family that
// satisfies match.
func FindQueueFamily(families []vk.QueueFamilyProperties, match func(vk.QueueFamilyProperties) bool) (uint32, bool) {
	for i, f := range families {
		if match(f) {
			return uint32(i), true
		}
	}
	return 0, false
}

// GraphicsQueueFamily returns the index of the first queue family that
// supports graphics operations.
func GraphicsQueueFamily(families []vk.QueueFamilyProperties) (uint32, bool) {
	return FindQueueFamily(families, func(f vk.QueueFamilyProperties) bool {
		return f.QueueFlags.Graphics()
	})
}
