package vk

import "testing"

func TestToStringStopsAtNul(t *testing.T) {
	buf := make([]byte, MaxExtensionNameSize)
	copy(buf, "VK_EXT_debug_utils")
	if got := ToString(buf); got != "VK_EXT_debug_utils" {
		t.Errorf("ToString() = %q", got)
	}
}

func TestToStringWithoutTerminator(t *testing.T) {
	buf := []byte("abc")
	if got := ToString(buf); got != "abc" {
		t.Errorf("ToString() = %q", got)
	}
}

func TestToStringEmptyBuffer(t *testing.T) {
	buf := make([]byte, 8)
	if got := ToString(buf); got != "" {
		t.Errorf("ToString() = %q, want empty", got)
	}
}

func TestToStringReplacesInvalidBytes(t *testing.T) {
	buf := []byte{'a', 0xff, 'b', 0xfe, 0}
	got := ToString(buf)
	if got != "a�b�" {
		t.Errorf("ToString() = %q", got)
	}
	// Lossy decoding must be idempotent for a fixed buffer.
	if again := ToString(buf); again != got {
		t.Errorf("ToString() not stable: %q then %q", got, again)
	}
}
