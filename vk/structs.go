package vk

import "unsafe"

// The records in this file mirror the native driver structures byte for
// byte on 64-bit targets. Field order, fixed buffer sizes and implicit
// padding all follow the C declarations; do not reorder fields.

// ApplicationInfo describes the application to the driver at instance
// creation. Name pointers must reference NUL-terminated buffers that stay
// alive for the duration of the create call.
type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo carries the parameters of CreateInstance.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   Flags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

// DeviceQueueCreateInfo requests a number of queues from one family.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            Flags
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

// DeviceCreateInfo carries the parameters of CreateDevice.
type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   Flags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
	PEnabledFeatures        *PhysicalDeviceFeatures
}

// ExtensionProperties is the capability record produced by extension
// enumerations. Immutable once queried.
type ExtensionProperties struct {
	ExtensionName [MaxExtensionNameSize]byte
	SpecVersion   uint32
}

// Name decodes the fixed-size extension name buffer.
func (p *ExtensionProperties) Name() string { return ToString(p.ExtensionName[:]) }

// LayerProperties is the capability record produced by layer enumerations.
type LayerProperties struct {
	LayerName             [MaxExtensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [MaxDescriptionSize]byte
}

// Name decodes the fixed-size layer name buffer.
func (p *LayerProperties) Name() string { return ToString(p.LayerName[:]) }

// Describe decodes the fixed-size description buffer.
func (p *LayerProperties) Describe() string { return ToString(p.Description[:]) }

// Extent3D is a three-dimensional extent in texels.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// QueueFamilyProperties describes one queue family of an adapter.
type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// MemoryType maps a set of memory properties onto a heap.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// MemoryHeap describes one memory heap of an adapter.
type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

// PhysicalDeviceMemoryProperties is the memory layout snapshot of an
// adapter. Only the first MemoryTypeCount/MemoryHeapCount entries of the
// fixed arrays are meaningful.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MaxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap
}

// PhysicalDeviceSparseProperties reports sparse-resource behavior.
type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape            Bool32
	ResidencyStandard2DMultisampleBlockShape Bool32
	ResidencyStandard3DBlockShape            Bool32
	ResidencyAlignedMipSize                  Bool32
	ResidencyNonResidentStrict               Bool32
}

// PhysicalDeviceProperties is the general property snapshot of an adapter.
type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [MaxPhysicalDeviceNameSize]byte
	PipelineCacheUUID [UUIDSize]byte
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
}

// Name decodes the fixed-size device name buffer.
func (p *PhysicalDeviceProperties) Name() string { return ToString(p.DeviceName[:]) }
