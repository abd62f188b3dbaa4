//go:build unix

package fsutil

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// syncDir flushes the directory entry created by a rename.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return &os.PathError{Op: "open", Path: dir, Err: err}
	}
	defer unix.Close(fd)

	if err := unix.Fsync(fd); err != nil {
		// Some filesystems reject fsync on directories.
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return &os.PathError{Op: "fsync", Path: dir, Err: err}
	}
	return nil
}
