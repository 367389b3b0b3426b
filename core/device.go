package core

import (
	"github.com/vkload/vkload/vk"
)

// VulkanDevice is a created logical device. It keeps a back reference to
// the connection that created it for lifetime ordering only and never
// destroys it.
type VulkanDevice struct {
	instance *VulkanInstance
	device   vk.Device
	commands *vk.DeviceCommands
}

// Queue implements interface. Requesting an index beyond the created
// count is a usage error of the native API.
func (d *VulkanDevice) Queue(family, index uint32) vk.Queue {
	var queue vk.Queue
	d.commands.GetDeviceQueue(d.device, family, index, &queue)
	return queue
}

// QueueWaitIdle implements interface.
func (d *VulkanDevice) QueueWaitIdle(queue vk.Queue) error {
	return vk.Error(d.commands.QueueWaitIdle(queue))
}

// WaitIdle implements interface.
func (d *VulkanDevice) WaitIdle() error {
	return vk.Error(d.commands.DeviceWaitIdle(d.device))
}

// Destroy implements interface. The connection the device came from
// stays alive and must be destroyed separately, after this returns.
func (d *VulkanDevice) Destroy() {
	d.commands.DestroyDevice(d.device, nil)
	d.device = vk.NullHandle
	d.commands = nil
}
