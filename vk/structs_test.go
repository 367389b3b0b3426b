package vk

import (
	"testing"
	"unsafe"

	qt "github.com/frankban/quicktest"
)

// The native driver reads and writes these records directly, so their Go
// layout must match the C declarations exactly on 64-bit targets.
func TestRecordLayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout assertions target 64-bit platforms")
	}
	c := qt.New(t)

	c.Assert(unsafe.Sizeof(ApplicationInfo{}), qt.Equals, uintptr(48))
	c.Assert(unsafe.Sizeof(InstanceCreateInfo{}), qt.Equals, uintptr(64))
	c.Assert(unsafe.Sizeof(DeviceQueueCreateInfo{}), qt.Equals, uintptr(40))
	c.Assert(unsafe.Sizeof(DeviceCreateInfo{}), qt.Equals, uintptr(72))
	c.Assert(unsafe.Sizeof(ExtensionProperties{}), qt.Equals, uintptr(260))
	c.Assert(unsafe.Sizeof(LayerProperties{}), qt.Equals, uintptr(520))
	c.Assert(unsafe.Sizeof(QueueFamilyProperties{}), qt.Equals, uintptr(24))
	c.Assert(unsafe.Sizeof(MemoryType{}), qt.Equals, uintptr(8))
	c.Assert(unsafe.Sizeof(MemoryHeap{}), qt.Equals, uintptr(16))
	c.Assert(unsafe.Sizeof(PhysicalDeviceMemoryProperties{}), qt.Equals, uintptr(520))
	c.Assert(unsafe.Sizeof(PhysicalDeviceFeatures{}), qt.Equals, uintptr(220))
	c.Assert(unsafe.Sizeof(PhysicalDeviceSparseProperties{}), qt.Equals, uintptr(20))
}

func TestRecordOffsets(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout assertions target 64-bit platforms")
	}
	c := qt.New(t)

	c.Assert(unsafe.Offsetof(ApplicationInfo{}.PNext), qt.Equals, uintptr(8))
	c.Assert(unsafe.Offsetof(ApplicationInfo{}.PEngineName), qt.Equals, uintptr(32))
	c.Assert(unsafe.Offsetof(ApplicationInfo{}.APIVersion), qt.Equals, uintptr(44))

	c.Assert(unsafe.Offsetof(InstanceCreateInfo{}.PApplicationInfo), qt.Equals, uintptr(24))
	c.Assert(unsafe.Offsetof(InstanceCreateInfo{}.PpEnabledExtensionNames), qt.Equals, uintptr(56))

	c.Assert(unsafe.Offsetof(DeviceQueueCreateInfo{}.PQueuePriorities), qt.Equals, uintptr(32))
	c.Assert(unsafe.Offsetof(DeviceCreateInfo{}.PEnabledFeatures), qt.Equals, uintptr(64))

	c.Assert(unsafe.Offsetof(PhysicalDeviceProperties{}.DeviceName), qt.Equals, uintptr(20))
	c.Assert(unsafe.Offsetof(PhysicalDeviceProperties{}.PipelineCacheUUID), qt.Equals, uintptr(276))
	c.Assert(unsafe.Offsetof(PhysicalDeviceProperties{}.Limits), qt.Equals, uintptr(296))

	c.Assert(unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryHeapCount), qt.Equals, uintptr(260))
	c.Assert(unsafe.Offsetof(PhysicalDeviceMemoryProperties{}.MemoryHeaps), qt.Equals, uintptr(264))
}

func TestCapabilityRecordNames(t *testing.T) {
	c := qt.New(t)

	var ext ExtensionProperties
	copy(ext.ExtensionName[:], "VK_KHR_surface")
	c.Assert(ext.Name(), qt.Equals, "VK_KHR_surface")
	c.Assert(ext.Name(), qt.Equals, ext.Name())

	var layer LayerProperties
	copy(layer.LayerName[:], "VK_LAYER_KHRONOS_validation")
	copy(layer.Description[:], "Khronos Validation Layer")
	c.Assert(layer.Name(), qt.Equals, "VK_LAYER_KHRONOS_validation")
	c.Assert(layer.Describe(), qt.Equals, "Khronos Validation Layer")
}
