package vk

import (
	"bytes"
	"strings"
)

// ToString decodes a fixed-size, NUL-terminated or NUL-padded byte buffer
// the way the native driver writes them. Invalid bytes are replaced rather
// than failing, and decoding the same buffer twice yields identical text.
func ToString(buf []byte) string {
	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}
	return strings.ToValidUTF8(string(buf), "�")
}
