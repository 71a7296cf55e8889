// Package disk provides the partition-listing adapter implementation.
package disk

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang-netconfig/internal/port"
	"golang-netconfig/internal/types"
)

// ManagerAdapter is an adapter that implements the DiskManager port by
// shelling out to parted(8) in machine-readable mode.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the DiskManager port
var _ port.DiskManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new disk manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ListPartitions returns the partitions of the given block device, in
// on-disk listing order.
func (d *ManagerAdapter) ListPartitions(ctx context.Context, device string) ([]types.Partition, error) {
	out, err := exec.CommandContext(ctx, "parted", "-s", "-m", device, "print").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("parted failed on %s: %w: %s", device, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("parted failed on %s: %w", device, err)
	}

	return parsePartedOutput(string(out))
}

// parsePartedOutput parses parted's machine-readable print output. The
// format is one ';'-terminated record per line: a "BYT;" header, a device
// record, then one record per partition whose first field is the partition
// number and whose seventh field is the comma-separated flag list, e.g.
//
//	1:1049kB:538MB:537MB:fat32::boot, esp;
func parsePartedOutput(out string) ([]types.Partition, error) {
	var partitions []types.Partition

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		if line == "" {
			continue
		}

		fields := strings.Split(line, ":")
		number, err := strconv.Atoi(fields[0])
		if err != nil {
			// Header or device record.
			continue
		}
		if number <= 0 {
			return nil, fmt.Errorf("invalid partition number %d in parted output", number)
		}

		var flags []string
		if len(fields) >= 7 && fields[6] != "" {
			for _, flag := range strings.Split(fields[6], ",") {
				flags = append(flags, strings.TrimSpace(flag))
			}
		}

		partitions = append(partitions, types.Partition{Number: number, Flags: flags})
	}

	return partitions, nil
}
