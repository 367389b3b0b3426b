package device

import (
	"testing"

	"github.com/vkload/vkload/vk"
)

func graphicsFamilies() []vk.QueueFamilyProperties {
	var families [3]vk.QueueFamilyProperties
	// Transfer-only, compute, then graphics+compute.
	families[0].QueueCount = 2
	families[1].QueueCount = 4
	families[2].QueueCount = 16
	setFlags(&families[0], false, false, true)
	setFlags(&families[1], false, true, true)
	setFlags(&families[2], true, true, true)
	return families[:]
}

func setFlags(f *vk.QueueFamilyProperties, graphics, compute, transfer bool) {
	var flags vk.QueueFlags
	if graphics {
		flags |= 1 << 0
	}
	if compute {
		flags |= 1 << 1
	}
	if transfer {
		flags |= 1 << 2
	}
	f.QueueFlags = flags
}

func TestGraphicsQueueFamily(t *testing.T) {
	families := graphicsFamilies()
	index, ok := GraphicsQueueFamily(families)
	if !ok {
		t.Fatal("no graphics family found")
	}
	if index != 2 {
		t.Errorf("GraphicsQueueFamily() = %d, want 2", index)
	}
}

func TestGraphicsQueueFamilyAbsent(t *testing.T) {
	families := graphicsFamilies()[:2]
	if _, ok := GraphicsQueueFamily(families); ok {
		t.Error("unexpected graphics family")
	}
}

func TestFindQueueFamilyFirstMatch(t *testing.T) {
	families := graphicsFamilies()
	index, ok := FindQueueFamily(families, func(f vk.QueueFamilyProperties) bool {
		return f.QueueFlags.Compute()
	})
	if !ok || index != 1 {
		t.Errorf("FindQueueFamily() = %d, %v, want 1, true", index, ok)
	}
}
