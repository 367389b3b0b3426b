package core

// nullTerminated copies s into a fresh NUL-terminated buffer that the
// driver can read during a call.
func nullTerminated(s string) []byte {
	return append([]byte(s), 0)
}

// nullTerminatedPtrs builds the name-pointer array that creation records
// expect. The returned slice keeps every name buffer reachable for as
// long as the slice itself is.
func nullTerminatedPtrs(names []string) []*byte {
	ptrs := make([]*byte, 0, len(names))
	for _, name := range names {
		buf := nullTerminated(name)
		ptrs = append(ptrs, &buf[0])
	}
	return ptrs
}
