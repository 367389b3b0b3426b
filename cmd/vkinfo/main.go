package main

import (
	"encoding/json"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vkload/vkload/core"
	"github.com/vkload/vkload/device"
)

var (
	debugMode = flag.Bool("debug", false, "enable the validation layer and debug extension")
	dumpJSON  = flag.Bool("json", false, "dump adapter info as JSON and exit")
)

func main() {
	flag.Parse()

	vulkan, err := core.NewVulkan()
	if err != nil {
		log.Fatal(err)
	}

	major, minor, patch := vulkan.Version()
	log.Infof("loader version %d.%d.%d", major, minor, patch)

	extensions, err := vulkan.EnumerateExtensions()
	if err != nil {
		log.Fatal(err)
	}
	for idx := range extensions {
		fmt.Printf("instance extension: %s (spec %d)\n", extensions[idx].Name(), extensions[idx].SpecVersion)
	}

	layers, err := vulkan.EnumerateLayers()
	if err != nil {
		log.Fatal(err)
	}
	for idx := range layers {
		fmt.Printf("instance layer: %s: %s\n", layers[idx].Name(), layers[idx].Describe())
	}

	instance, err := core.NewVulkanInstance(vulkan, core.InstanceConfiguration{
		AppName:    "vkinfo",
		EngineName: "vkload",
		DebugMode:  *debugMode,
	})
	if err != nil {
		vulkan.Destroy()
		log.Fatal(err)
	}

	if *dumpJSON {
		bytes, err := json.Marshal(instance.PhysicalDevicesInfo())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n", bytes)
		instance.Destroy()
		return
	}

	adapters := instance.AvailableDevices()
	if len(adapters) == 0 {
		instance.Destroy()
		log.Fatal("no adapters present")
	}

	for _, info := range instance.PhysicalDevicesInfo() {
		fmt.Printf("adapter: %s (%s, api %s, %d MiB)\n",
			info.Name, info.Type, info.APIVersion, info.Memory/(1<<20))
		for _, family := range info.QueueFamilies {
			fmt.Printf("  queue family %d: %d queues, %s\n",
				family.Index, family.QueueCount, family.Flags)
		}
	}

	adapter := adapters[0]
	families := instance.QueueFamilyProperties(adapter)
	requests := make([]core.QueueRequest, len(families))
	for idx, family := range families {
		requests[idx] = core.QueueRequest{Family: uint32(idx), Count: family.QueueCount}
	}

	dev, err := instance.CreateDevice(adapter, core.DeviceConfiguration{Queues: requests})
	if err != nil {
		instance.Destroy()
		log.Fatal(err)
	}

	graphicsFamily, ok := device.GraphicsQueueFamily(families)
	if !ok {
		graphicsFamily = 0
	}
	queue := dev.Queue(graphicsFamily, 0)
	if err := dev.QueueWaitIdle(queue); err != nil {
		log.Error(err)
	}
	if err := dev.WaitIdle(); err != nil {
		log.Error(err)
	}

	dev.Destroy()
	instance.Destroy()
	log.Info("done")
}
