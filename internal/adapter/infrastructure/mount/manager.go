// Package mount provides the mount/unmount adapter implementation.
package mount

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang-netconfig/internal/pkg/logging"
	"golang-netconfig/internal/port"
)

// ManagerAdapter is an adapter that implements the Mounter port by shelling
// out to mount(8) and umount(8). Each Mount call allocates a fresh
// temporary mount point; Unmount releases it and removes the directory.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the Mounter port
var _ port.Mounter = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new mount manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// Mount mounts the given device node at a new temporary directory and
// returns the mount point. The error carries mount's stderr so probe
// failures are diagnosable from the log.
func (m *ManagerAdapter) Mount(ctx context.Context, devicePath string) (string, error) {
	mountPoint, err := os.MkdirTemp("", "netconfig-")
	if err != nil {
		return "", fmt.Errorf("failed to create mount point: %w", err)
	}

	out, err := exec.CommandContext(ctx, "mount", devicePath, mountPoint).CombinedOutput()
	if err != nil {
		if rmErr := os.Remove(mountPoint); rmErr != nil {
			logging.WithComponent("mount").WithError(rmErr).
				Debug("Failed to remove unused mount point")
		}
		return "", fmt.Errorf("mount %s failed: %w: %s", devicePath, err, strings.TrimSpace(string(out)))
	}

	return mountPoint, nil
}

// Unmount unmounts the given mount point and removes the directory.
func (m *ManagerAdapter) Unmount(ctx context.Context, mountPoint string) error {
	out, err := exec.CommandContext(ctx, "umount", mountPoint).CombinedOutput()
	if err != nil {
		return fmt.Errorf("umount %s failed: %w: %s", mountPoint, err, strings.TrimSpace(string(out)))
	}

	if err := os.Remove(mountPoint); err != nil {
		logging.WithComponent("mount").WithError(err).
			Debug("Failed to remove mount point directory")
	}
	return nil
}
