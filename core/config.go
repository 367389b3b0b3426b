package core

import (
	"github.com/vkload/vkload/vk"
)

// Configuration defines a global loader configuration setting.
type Configuration struct {
	Instance InstanceConfiguration
	Device   DeviceConfiguration
}

// InstanceConfiguration is used to configure the connection to the driver.
type InstanceConfiguration struct {
	// AppName and EngineName are reported to the driver at creation.
	AppName    string
	EngineName string

	// DebugMode requests the validation layer and the debug extension
	// on top of whatever Extensions and Layers already list.
	DebugMode bool

	Extensions []string
	Layers     []string
}

// QueueRequest asks for Count queues from the queue family at index Family.
type QueueRequest struct {
	Family uint32
	Count  uint32
}

// DeviceConfiguration is used to configure the created logical device.
type DeviceConfiguration struct {
	Extensions []string

	// Queues lists the queue families to create queues from. A family
	// must not appear twice.
	Queues []QueueRequest

	// Features, when set, is the fine-grained capability set to enable.
	// Nil enables no optional features.
	Features *vk.PhysicalDeviceFeatures
}
