package vk

// MakeVersion packs a semantic version the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// ParseVersion splits a packed version produced by MakeVersion.
func ParseVersion(version uint32) (major, minor, patch uint32) {
	return version >> 22, version >> 12 & 0x3ff, version & 0xfff
}
