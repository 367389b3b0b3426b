package core

import (
	"errors"
	"fmt"

	"github.com/vkload/vkload/device"
	"github.com/vkload/vkload/vk"
)

const (
	validationLayerName = "VK_LAYER_KHRONOS_validation"
	debugExtensionName  = "VK_EXT_debug_utils"
)

// baselineAPIVersion is requested from the driver at connection creation.
var baselineAPIVersion = vk.MakeVersion(1, 2, 133)

// Vulkan is the driver bootstrap. It owns the shared library mapping and
// the commands resolvable before any instance exists. A successful
// connection takes the bootstrap over; until then the caller keeps it and
// may retry creation or Destroy it.
type Vulkan struct {
	lib *vk.Library
}

// NewVulkan loads the Vulkan shared library and resolves the
// library-tier commands through its bootstrap symbol.
func NewVulkan() (*Vulkan, error) {
	lib, err := vk.OpenLibrary()
	if err != nil {
		return nil, err
	}
	return &Vulkan{lib: lib}, nil
}

// EnumerateExtensions lists the instance-level extensions the driver
// implements. Entries can appear or vanish between calls, so the second
// count is the one trusted.
func (v *Vulkan) EnumerateExtensions() ([]vk.ExtensionProperties, error) {
	var count uint32
	if err := vk.Error(v.lib.EnumerateInstanceExtensionProperties(nil, &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	props := make([]vk.ExtensionProperties, count)
	if count == 0 {
		return props, nil
	}
	if err := vk.Error(v.lib.EnumerateInstanceExtensionProperties(nil, &count, &props[0])); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	return props[:count], nil
}

// EnumerateLayers lists the instance-level layers installed on the host.
func (v *Vulkan) EnumerateLayers() ([]vk.LayerProperties, error) {
	var count uint32
	if err := vk.Error(v.lib.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	props := make([]vk.LayerProperties, count)
	if count == 0 {
		return props, nil
	}
	if err := vk.Error(v.lib.EnumerateInstanceLayerProperties(&count, &props[0])); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	return props[:count], nil
}

// Version reports the instance-level version the loader implements.
// Loaders predating the version query report 1.0.0.
func (v *Vulkan) Version() (major, minor, patch uint32) {
	if v.lib.EnumerateInstanceVersion == nil {
		return 1, 0, 0
	}
	var packed uint32
	if vk.Error(v.lib.EnumerateInstanceVersion(&packed)) != nil {
		return 1, 0, 0
	}
	return vk.ParseVersion(packed)
}

// Destroy unloads the shared library. Only valid while no connection has
// taken the bootstrap over.
func (v *Vulkan) Destroy() {
	v.lib.Close()
	v.lib = nil
}

// VulkanInstance is the concrete driver connection.
type VulkanInstance struct {
	configuration InstanceConfiguration

	vulkan   *Vulkan
	instance vk.Instance
	commands *vk.InstanceCommands

	availableDevices []vk.PhysicalDevice
}

// NewVulkanInstance establishes the driver connection. On success the
// connection owns the bootstrap and vulkan must not be used again. On
// failure ownership stays with the caller, who can fix the configuration
// and retry on the same bootstrap.
func NewVulkanInstance(vulkan *Vulkan, cfg InstanceConfiguration) (Instance, error) {
	if cfg.DebugMode {
		cfg.Layers = append(cfg.Layers, validationLayerName)
		cfg.Extensions = append(cfg.Extensions, debugExtensionName)
	}

	appName := nullTerminated(cfg.AppName)
	engineName := nullTerminated(cfg.EngineName)
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   &appName[0],
		ApplicationVersion: 1,
		PEngineName:        &engineName[0],
		EngineVersion:      1,
		APIVersion:         baselineAPIVersion,
	}

	info := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:      &appInfo,
		EnabledLayerCount:     uint32(len(cfg.Layers)),
		EnabledExtensionCount: uint32(len(cfg.Extensions)),
	}
	layers := nullTerminatedPtrs(cfg.Layers)
	if len(layers) > 0 {
		info.PpEnabledLayerNames = &layers[0]
	}
	extensions := nullTerminatedPtrs(cfg.Extensions)
	if len(extensions) > 0 {
		info.PpEnabledExtensionNames = &extensions[0]
	}

	var instance vk.Instance
	if err := vk.Error(vulkan.lib.CreateInstance(&info, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}

	commands, err := vulkan.lib.ResolveInstanceCommands(instance)
	if err != nil {
		// The partial table may still carry the destructor.
		if commands.DestroyInstance != nil {
			commands.DestroyInstance(instance, nil)
		}
		return nil, errors.New("vk.GetInstanceProcAddr(): " + err.Error())
	}

	availableDevices, err := enumerateDevices(commands, instance)
	if err != nil {
		commands.DestroyInstance(instance, nil)
		return nil, err
	}

	return &VulkanInstance{
		configuration:    cfg,
		vulkan:           vulkan,
		instance:         instance,
		commands:         commands,
		availableDevices: availableDevices,
	}, nil
}

func enumerateDevices(commands *vk.InstanceCommands, instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var count uint32
	if err := vk.Error(commands.EnumeratePhysicalDevices(instance, &count, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	devices := make([]vk.PhysicalDevice, count)
	if count == 0 {
		return devices, nil
	}
	if err := vk.Error(commands.EnumeratePhysicalDevices(instance, &count, &devices[0])); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	return devices[:count], nil
}

// PhysicalDevicesInfo implements interface.
func (v *VulkanInstance) PhysicalDevicesInfo() []device.PhysicalDeviceInfo {
	pdi := make([]device.PhysicalDeviceInfo, len(v.availableDevices))
	for i := 0; i < len(v.availableDevices); i++ {
		d := v.availableDevices[i]

		extensions, err := v.DeviceExtensions(d)
		if err != nil {
			pdi[i].Invalid = true
		}
		for idx := range extensions {
			pdi[i].Extensions = append(pdi[i].Extensions, extensions[idx].Name())
		}

		layers, err := v.DeviceLayers(d)
		if err != nil {
			pdi[i].Invalid = true
		}
		for idx := range layers {
			pdi[i].Layers = append(pdi[i].Layers, layers[idx].Name())
		}

		pdi[i].Features = v.Features(d)

		memory := v.MemoryProperties(d)
		for h := uint32(0); h < memory.MemoryHeapCount; h++ {
			pdi[i].Memory += memory.MemoryHeaps[h].Size
		}

		properties := v.Properties(d)
		pdi[i].ID = int(properties.DeviceID)
		pdi[i].VendorID = int(properties.VendorID)
		pdi[i].DriverVersion = int(properties.DriverVersion)
		pdi[i].Name = properties.Name()
		pdi[i].Type = properties.DeviceType.String()
		major, minor, patch := vk.ParseVersion(properties.APIVersion)
		pdi[i].APIVersion = fmt.Sprintf("%d.%d.%d", major, minor, patch)

		for fi, family := range v.QueueFamilyProperties(d) {
			pdi[i].QueueFamilies = append(pdi[i].QueueFamilies, device.QueueFamilyInfo{
				Index:      uint32(fi),
				QueueCount: family.QueueCount,
				Flags:      family.QueueFlags.String(),
			})
		}
	}
	return pdi
}

// AvailableDevices implements interface.
func (v *VulkanInstance) AvailableDevices() []vk.PhysicalDevice {
	return v.availableDevices
}

// EnumerateAdapters implements interface. The known set is kept on a
// failed re-query.
func (v *VulkanInstance) EnumerateAdapters() ([]vk.PhysicalDevice, error) {
	devices, err := enumerateDevices(v.commands, v.instance)
	if err != nil {
		return nil, err
	}
	v.availableDevices = devices
	return devices, nil
}

// DeviceExtensions implements interface.
func (v *VulkanInstance) DeviceExtensions(d vk.PhysicalDevice) ([]vk.ExtensionProperties, error) {
	var count uint32
	if err := vk.Error(v.commands.EnumerateDeviceExtensionProperties(d, nil, &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}
	props := make([]vk.ExtensionProperties, count)
	if count == 0 {
		return props, nil
	}
	if err := vk.Error(v.commands.EnumerateDeviceExtensionProperties(d, nil, &count, &props[0])); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}
	return props[:count], nil
}

// DeviceLayers implements interface.
func (v *VulkanInstance) DeviceLayers(d vk.PhysicalDevice) ([]vk.LayerProperties, error) {
	var count uint32
	if err := vk.Error(v.commands.EnumerateDeviceLayerProperties(d, &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceLayerProperties(): " + err.Error())
	}
	props := make([]vk.LayerProperties, count)
	if count == 0 {
		return props, nil
	}
	if err := vk.Error(v.commands.EnumerateDeviceLayerProperties(d, &count, &props[0])); err != nil {
		return nil, errors.New("vk.EnumerateDeviceLayerProperties(): " + err.Error())
	}
	return props[:count], nil
}

// QueueFamilyProperties implements interface. The query has no status
// return, a shrinking count just leaves the trusted prefix.
func (v *VulkanInstance) QueueFamilyProperties(d vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	v.commands.GetPhysicalDeviceQueueFamilyProperties(d, &count, nil)
	families := make([]vk.QueueFamilyProperties, count)
	if count == 0 {
		return families
	}
	v.commands.GetPhysicalDeviceQueueFamilyProperties(d, &count, &families[0])
	return families[:count]
}

// Features implements interface.
func (v *VulkanInstance) Features(d vk.PhysicalDevice) vk.PhysicalDeviceFeatures {
	var features vk.PhysicalDeviceFeatures
	v.commands.GetPhysicalDeviceFeatures(d, &features)
	return features
}

// Properties implements interface.
func (v *VulkanInstance) Properties(d vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var properties vk.PhysicalDeviceProperties
	v.commands.GetPhysicalDeviceProperties(d, &properties)
	return properties
}

// MemoryProperties implements interface.
func (v *VulkanInstance) MemoryProperties(d vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	var memory vk.PhysicalDeviceMemoryProperties
	v.commands.GetPhysicalDeviceMemoryProperties(d, &memory)
	return memory
}

// CreateDevice implements interface.
func (v *VulkanInstance) CreateDevice(d vk.PhysicalDevice, cfg DeviceConfiguration) (device.Device, error) {
	var maxQueues uint32
	for _, request := range cfg.Queues {
		if request.Count > maxQueues {
			maxQueues = request.Count
		}
	}
	// One shared priority array sized for the largest request, every
	// queue at maximum priority.
	priorities := make([]float32, maxQueues)
	for i := range priorities {
		priorities[i] = 1.0
	}

	queueInfos := make([]vk.DeviceQueueCreateInfo, len(cfg.Queues))
	for i, request := range cfg.Queues {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: request.Family,
			QueueCount:       request.Count,
		}
		if len(priorities) > 0 {
			queueInfos[i].PQueuePriorities = &priorities[0]
		}
	}

	info := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:  uint32(len(queueInfos)),
		EnabledExtensionCount: uint32(len(cfg.Extensions)),
		PEnabledFeatures:      cfg.Features,
	}
	if len(queueInfos) > 0 {
		info.PQueueCreateInfos = &queueInfos[0]
	}
	extensions := nullTerminatedPtrs(cfg.Extensions)
	if len(extensions) > 0 {
		info.PpEnabledExtensionNames = &extensions[0]
	}

	var dev vk.Device
	if err := vk.Error(v.commands.CreateDevice(d, &info, nil, &dev)); err != nil {
		return nil, errors.New("vk.CreateDevice(): " + err.Error())
	}

	commands, err := v.commands.ResolveDeviceCommands(dev)
	if err != nil {
		if commands.DestroyDevice != nil {
			commands.DestroyDevice(dev, nil)
		}
		return nil, errors.New("vk.GetDeviceProcAddr(): " + err.Error())
	}

	return &VulkanDevice{
		instance: v,
		device:   dev,
		commands: commands,
	}, nil
}

// Destroy implements interface. The native instance goes first, only
// then is the library mapping the connection owns released.
func (v *VulkanInstance) Destroy() {
	v.availableDevices = nil
	v.commands.DestroyInstance(v.instance, nil)
	v.instance = vk.NullHandle
	v.vulkan.Destroy()
}
