// Package root resolves the directory the launcher serves.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned by Check for a path that is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Executable returns the directory containing the running program, with
// symlinks resolved, so the served tree does not depend on the caller's
// working directory.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Check(filepath.Dir(exe))
}

// Check makes dir absolute and verifies it is an existing directory.
func Check(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}
	return abs, nil
}
