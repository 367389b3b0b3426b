// Package vk loads the Vulkan shared library at runtime and resolves its
// commands dynamically, without linking against the driver. Commands come in
// three tiers, each resolved through the previous tier's resolver function:
// library-level commands through vkGetInstanceProcAddr with a null instance,
// instance-level commands through it with a live instance, and device-level
// commands through vkGetDeviceProcAddr obtained from the instance tier.
package vk

// Dispatchable handles. These are opaque pointers on the native side and
// must stay pointer-sized.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
)

// NullHandle is the zero value of every handle type.
const NullHandle = 0

// Bool32 is the 4-byte boolean the native structures use.
type Bool32 uint32

// Bool32 values.
const (
	False Bool32 = 0
	True  Bool32 = 1
)

// B converts a Bool32 into a Go bool.
func (b Bool32) B() bool { return b != False }

// DeviceSize holds native sizes and offsets.
type DeviceSize uint64

// Fixed buffer sizes defined by the native ABI.
const (
	MaxPhysicalDeviceNameSize = 256
	MaxExtensionNameSize      = 256
	MaxDescriptionSize        = 256
	UUIDSize                  = 16
	MaxMemoryTypes            = 32
	MaxMemoryHeaps            = 16
)

// StructureType tags every creation-parameter record.
type StructureType uint32

// StructureType values for the records this package builds.
const (
	StructureTypeApplicationInfo       StructureType = 0
	StructureTypeInstanceCreateInfo    StructureType = 1
	StructureTypeDeviceQueueCreateInfo StructureType = 2
	StructureTypeDeviceCreateInfo      StructureType = 3
)

// PhysicalDeviceType categorises an adapter.
type PhysicalDeviceType uint32

// PhysicalDeviceType values.
const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGpu
	PhysicalDeviceTypeDiscreteGpu
	PhysicalDeviceTypeVirtualGpu
	PhysicalDeviceTypeCpu
)

func (t PhysicalDeviceType) String() string {
	switch t {
	case PhysicalDeviceTypeOther:
		return "other"
	case PhysicalDeviceTypeIntegratedGpu:
		return "integrated"
	case PhysicalDeviceTypeDiscreteGpu:
		return "discrete"
	case PhysicalDeviceTypeVirtualGpu:
		return "virtual"
	case PhysicalDeviceTypeCpu:
		return "cpu"
	}
	return "unknown"
}
