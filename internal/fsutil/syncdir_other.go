//go:build !unix

package fsutil

// syncDir is a no-op on platforms without directory fsync.
func syncDir(_ string) error { return nil }
