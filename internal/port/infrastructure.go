// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

import (
	"context"

	"github.com/vishvananda/netlink"

	"golang-netconfig/internal/types"
)

// NetworkManager is a port for network interface enumeration.
// This interface abstracts netlink operations for MAC resolution.
type NetworkManager interface {
	// ListLinks returns all network links visible to the running system
	ListLinks() ([]netlink.Link, error)
}

// DiskManager is a port for block-device inspection.
type DiskManager interface {
	// ListPartitions returns the partitions of the given block device,
	// in on-disk listing order
	ListPartitions(ctx context.Context, device string) ([]types.Partition, error)
}

// Mounter is a port for mount/unmount operations.
// Mount allocates a fresh temporary mount point per call; Unmount releases
// it again. Mount failures surface the underlying process-execution error.
type Mounter interface {
	// Mount mounts the given device node at a new temporary directory and
	// returns the mount point
	Mount(ctx context.Context, devicePath string) (string, error)

	// Unmount unmounts the given mount point and removes the directory
	Unmount(ctx context.Context, mountPoint string) error
}

// FileManager is a port for file system operations.
type FileManager interface {
	// WriteFile atomically replaces the named file with the given data
	WriteFile(filename string, data []byte, perm int) error

	// ListDir returns the entry names of a directory
	ListDir(dir string) ([]string, error)

	// Remove deletes a single file
	Remove(filename string) error

	// IsDir reports whether the path exists and is a directory
	IsDir(path string) bool
}
