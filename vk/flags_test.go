package vk

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestQueueFlags(t *testing.T) {
	c := qt.New(t)

	f := queueGraphicsBit | queueTransferBit
	c.Assert(f.Graphics(), qt.IsTrue)
	c.Assert(f.Transfer(), qt.IsTrue)
	c.Assert(f.Compute(), qt.IsFalse)
	c.Assert(f.SparseBinding(), qt.IsFalse)
	c.Assert(f.Protected(), qt.IsFalse)
	c.Assert(f.String(), qt.Equals, "graphics|transfer")
	c.Assert(QueueFlags(0).String(), qt.Equals, "")
}

func TestMemoryPropertyFlags(t *testing.T) {
	c := qt.New(t)

	f := memoryPropertyDeviceLocalBit | memoryPropertyHostVisibleBit | memoryPropertyHostCoherentBit
	c.Assert(f.DeviceLocal(), qt.IsTrue)
	c.Assert(f.HostVisible(), qt.IsTrue)
	c.Assert(f.HostCoherent(), qt.IsTrue)
	c.Assert(f.HostCached(), qt.IsFalse)
	c.Assert(f.LazilyAllocated(), qt.IsFalse)
	c.Assert(f.Protected(), qt.IsFalse)
	c.Assert(f.String(), qt.Equals, "device_local|host_visible|host_coherent")
}

func TestMemoryHeapFlags(t *testing.T) {
	c := qt.New(t)

	c.Assert(memoryHeapDeviceLocalBit.DeviceLocal(), qt.IsTrue)
	c.Assert(memoryHeapDeviceLocalBit.MultiInstance(), qt.IsFalse)
	c.Assert((memoryHeapDeviceLocalBit | memoryHeapMultiInstanceBit).String(), qt.Equals, "device_local|multi_instance")
}
