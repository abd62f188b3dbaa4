// Package integrity compares installed files against the content and mode the installer intended.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CheckResult holds the outcome of a file integrity check.
type CheckResult struct {
	// Path is the filesystem path that was verified.
	Path string
	// Expected is the hex-encoded SHA-256 checksum that was expected.
	Expected string
	// Actual is the hex-encoded SHA-256 checksum that was computed. Empty when the file is missing.
	Actual string
	// ExpectedPerm is the permission bits the file should carry.
	ExpectedPerm fs.FileMode
	// ActualPerm is the permission bits found on disk.
	ActualPerm fs.FileMode
	// Missing is true when the file does not exist.
	Missing bool
	// OK is true when the file exists with matching checksum and permissions.
	OK bool
}

// String describes the result in one line.
func (r CheckResult) String() string {
	switch {
	case r.Missing:
		return fmt.Sprintf("%s: missing", r.Path)
	case r.Actual != r.Expected:
		return fmt.Sprintf("%s: sha256 %s, want %s", r.Path, r.Actual, r.Expected)
	case r.ActualPerm != r.ExpectedPerm:
		return fmt.Sprintf("%s: mode %04o, want %04o", r.Path, r.ActualPerm, r.ExpectedPerm)
	default:
		return fmt.Sprintf("%s: ok", r.Path)
	}
}

// HashBytes returns the hex-encoded SHA-256 checksum of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile computes the SHA-256 checksum of the file at path using streaming I/O.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("integrity: open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("integrity: hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyFile checks the file at path against expectedChecksum and perm.
// A missing file is reported in the result, not as an error.
func VerifyFile(path, expectedChecksum string, perm fs.FileMode) (CheckResult, error) {
	res := CheckResult{
		Path:         path,
		Expected:     expectedChecksum,
		ExpectedPerm: perm,
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Missing = true
		return res, nil
	}
	if err != nil {
		return CheckResult{}, fmt.Errorf("integrity: stat %s: %w", path, err)
	}
	res.ActualPerm = info.Mode().Perm()

	actual, err := HashFile(path)
	if err != nil {
		return CheckResult{}, err
	}
	res.Actual = actual
	res.OK = actual == expectedChecksum && res.ActualPerm == perm
	return res, nil
}
