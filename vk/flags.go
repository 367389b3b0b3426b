package vk

import "strings"

// Flags is the generic bitmask type used by creation-parameter records.
type Flags uint32

// QueueFlags describes the operations a queue family supports.
type QueueFlags uint32

const (
	queueGraphicsBit      QueueFlags = 1 << 0
	queueComputeBit       QueueFlags = 1 << 1
	queueTransferBit      QueueFlags = 1 << 2
	queueSparseBindingBit QueueFlags = 1 << 3
	queueProtectedBit     QueueFlags = 1 << 4
)

// Graphics reports whether the family supports graphics operations.
func (f QueueFlags) Graphics() bool { return f&queueGraphicsBit != 0 }

// Compute reports whether the family supports compute operations.
func (f QueueFlags) Compute() bool { return f&queueComputeBit != 0 }

// Transfer reports whether the family supports transfer operations.
func (f QueueFlags) Transfer() bool { return f&queueTransferBit != 0 }

// SparseBinding reports whether the family supports sparse binding.
func (f QueueFlags) SparseBinding() bool { return f&queueSparseBindingBit != 0 }

// Protected reports whether the family supports protected memory.
func (f QueueFlags) Protected() bool { return f&queueProtectedBit != 0 }

func (f QueueFlags) String() string {
	var names []string
	if f.Graphics() {
		names = append(names, "graphics")
	}
	if f.Compute() {
		names = append(names, "compute")
	}
	if f.Transfer() {
		names = append(names, "transfer")
	}
	if f.SparseBinding() {
		names = append(names, "sparse_binding")
	}
	if f.Protected() {
		names = append(names, "protected")
	}
	return strings.Join(names, "|")
}

// MemoryPropertyFlags describes the properties of a memory type.
type MemoryPropertyFlags uint32

const (
	memoryPropertyDeviceLocalBit     MemoryPropertyFlags = 1 << 0
	memoryPropertyHostVisibleBit     MemoryPropertyFlags = 1 << 1
	memoryPropertyHostCoherentBit    MemoryPropertyFlags = 1 << 2
	memoryPropertyHostCachedBit      MemoryPropertyFlags = 1 << 3
	memoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 1 << 4
	memoryPropertyProtectedBit       MemoryPropertyFlags = 1 << 5
)

// DeviceLocal reports whether the memory is local to the device.
func (f MemoryPropertyFlags) DeviceLocal() bool { return f&memoryPropertyDeviceLocalBit != 0 }

// HostVisible reports whether the memory can be mapped by the host.
func (f MemoryPropertyFlags) HostVisible() bool { return f&memoryPropertyHostVisibleBit != 0 }

// HostCoherent reports whether host writes need no explicit flush.
func (f MemoryPropertyFlags) HostCoherent() bool { return f&memoryPropertyHostCoherentBit != 0 }

// HostCached reports whether the memory is cached on the host.
func (f MemoryPropertyFlags) HostCached() bool { return f&memoryPropertyHostCachedBit != 0 }

// LazilyAllocated reports whether backing memory may be committed lazily.
func (f MemoryPropertyFlags) LazilyAllocated() bool { return f&memoryPropertyLazilyAllocatedBit != 0 }

// Protected reports whether only protected queue operations may access
// the memory.
func (f MemoryPropertyFlags) Protected() bool { return f&memoryPropertyProtectedBit != 0 }

func (f MemoryPropertyFlags) String() string {
	var names []string
	if f.DeviceLocal() {
		names = append(names, "device_local")
	}
	if f.HostVisible() {
		names = append(names, "host_visible")
	}
	if f.HostCoherent() {
		names = append(names, "host_coherent")
	}
	if f.HostCached() {
		names = append(names, "host_cached")
	}
	if f.LazilyAllocated() {
		names = append(names, "lazily_allocated")
	}
	if f.Protected() {
		names = append(names, "protected")
	}
	return strings.Join(names, "|")
}

// MemoryHeapFlags describes the properties of a memory heap.
type MemoryHeapFlags uint32

const (
	memoryHeapDeviceLocalBit   MemoryHeapFlags = 1 << 0
	memoryHeapMultiInstanceBit MemoryHeapFlags = 1 << 1
)

// DeviceLocal reports whether the heap is local to the device.
func (f MemoryHeapFlags) DeviceLocal() bool { return f&memoryHeapDeviceLocalBit != 0 }

// MultiInstance reports whether the heap is replicated per device instance.
func (f MemoryHeapFlags) MultiInstance() bool { return f&memoryHeapMultiInstanceBit != 0 }

func (f MemoryHeapFlags) String() string {
	var names []string
	if f.DeviceLocal() {
		names = append(names, "device_local")
	}
	if f.MultiInstance() {
		names = append(names, "multi_instance")
	}
	return strings.Join(names, "|")
}

// SampleCountFlags is carried inside PhysicalDeviceLimits.
type SampleCountFlags uint32
