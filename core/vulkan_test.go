package core_test

import (
	"reflect"
	"testing"

	"github.com/vkload/vkload/core"
	"github.com/vkload/vkload/vk"
)

// newTestVulkan loads the driver or skips the test on hosts without one.
func newTestVulkan(t *testing.T) *core.Vulkan {
	t.Helper()
	vulkan, err := core.NewVulkan()
	if err != nil {
		t.Skipf("vulkan driver unavailable: %v", err)
	}
	return vulkan
}

func newTestInstance(t *testing.T) core.Instance {
	t.Helper()
	vulkan := newTestVulkan(t)
	instance, err := core.NewVulkanInstance(vulkan, core.InstanceConfiguration{
		AppName:    "vkload-test",
		EngineName: "vkload",
	})
	if err != nil {
		vulkan.Destroy()
		t.Fatalf("instance creation failed: %v", err)
	}
	return instance
}

func TestLibraryEnumeration(t *testing.T) {
	vulkan := newTestVulkan(t)
	defer vulkan.Destroy()

	extensions, err := vulkan.EnumerateExtensions()
	if err != nil {
		t.Fatalf("extension enumeration failed: %v", err)
	}
	for idx := range extensions {
		if extensions[idx].Name() == "" {
			t.Errorf("extension %d has an empty name", idx)
		}
	}

	layers, err := vulkan.EnumerateLayers()
	if err != nil {
		t.Fatalf("layer enumeration failed: %v", err)
	}
	for idx := range layers {
		if layers[idx].Name() == "" {
			t.Errorf("layer %d has an empty name", idx)
		}
	}

	major, _, _ := vulkan.Version()
	if major < 1 {
		t.Errorf("implausible major version %d", major)
	}
}

func TestInstanceLifecycle(t *testing.T) {
	instance := newTestInstance(t)
	defer instance.Destroy()

	for _, d := range instance.AvailableDevices() {
		if d == vk.NullHandle {
			t.Error("enumeration produced a null adapter handle")
		}
	}
	refreshed, err := instance.EnumerateAdapters()
	if err != nil {
		t.Fatalf("adapter re-query failed: %v", err)
	}
	if len(refreshed) != len(instance.AvailableDevices()) {
		t.Error("re-query did not refresh the available set")
	}
	for idx, info := range instance.PhysicalDevicesInfo() {
		if info.Invalid {
			t.Errorf("adapter %d reported invalid", idx)
		}
		if info.Name == "" {
			t.Errorf("adapter %d has an empty name", idx)
		}
	}
}

// A failed creation must leave the bootstrap usable for a retry.
func TestCreateInstanceRetry(t *testing.T) {
	vulkan := newTestVulkan(t)

	_, err := core.NewVulkanInstance(vulkan, core.InstanceConfiguration{
		AppName:    "vkload-test",
		EngineName: "vkload",
		Extensions: []string{"VK_NONSENSE_not_an_extension"},
	})
	if err == nil {
		t.Fatal("creation with an unknown extension must fail")
	}

	instance, err := core.NewVulkanInstance(vulkan, core.InstanceConfiguration{
		AppName:    "vkload-test",
		EngineName: "vkload",
	})
	if err != nil {
		vulkan.Destroy()
		t.Fatalf("retry on the same bootstrap failed: %v", err)
	}
	instance.Destroy()
}

// Adapter snapshots are immutable, repeated queries must agree.
func TestAdapterQueriesStable(t *testing.T) {
	instance := newTestInstance(t)
	defer instance.Destroy()

	for _, d := range instance.AvailableDevices() {
		if !reflect.DeepEqual(instance.Features(d), instance.Features(d)) {
			t.Error("feature queries disagree")
		}
		if !reflect.DeepEqual(instance.Properties(d), instance.Properties(d)) {
			t.Error("property queries disagree")
		}
		if !reflect.DeepEqual(instance.MemoryProperties(d), instance.MemoryProperties(d)) {
			t.Error("memory property queries disagree")
		}
		if len(instance.QueueFamilyProperties(d)) == 0 {
			t.Error("adapter reports no queue families")
		}
	}
}

func TestDeviceLifecycle(t *testing.T) {
	instance := newTestInstance(t)
	defer instance.Destroy()

	adapters := instance.AvailableDevices()
	if len(adapters) == 0 {
		t.Skip("no adapters present")
	}
	adapter := adapters[0]

	_, err := instance.CreateDevice(adapter, core.DeviceConfiguration{
		Extensions: []string{"VK_NONSENSE_not_an_extension"},
		Queues:     []core.QueueRequest{{Family: 0, Count: 1}},
	})
	if err == nil {
		t.Fatal("device creation with an unknown extension must fail")
	}

	families := instance.QueueFamilyProperties(adapter)

	zeroRequests := make([]core.QueueRequest, len(families))
	for idx := range families {
		zeroRequests[idx] = core.QueueRequest{Family: uint32(idx), Count: 0}
	}
	if _, err := instance.CreateDevice(adapter, core.DeviceConfiguration{Queues: zeroRequests}); err == nil {
		t.Fatal("device creation with zero queue counts must fail")
	}

	requests := make([]core.QueueRequest, len(families))
	for idx, family := range families {
		requests[idx] = core.QueueRequest{Family: uint32(idx), Count: family.QueueCount}
	}

	dev, err := instance.CreateDevice(adapter, core.DeviceConfiguration{Queues: requests})
	if err != nil {
		t.Fatalf("device creation failed: %v", err)
	}
	defer dev.Destroy()

	queue := dev.Queue(0, 0)
	if queue == vk.NullHandle {
		t.Fatal("queue handle is null")
	}
	if err := dev.QueueWaitIdle(queue); err != nil {
		t.Errorf("queue wait failed: %v", err)
	}
	if err := dev.WaitIdle(); err != nil {
		t.Errorf("device wait failed: %v", err)
	}
}
