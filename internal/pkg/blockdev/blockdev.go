// Package blockdev holds pure helpers for partition selection and device
// node naming. Keeping them free of side effects makes the mount-probe
// policy independently testable.
package blockdev

import (
	"strconv"
	"strings"

	"golang-netconfig/internal/types"
)

// Skip reports whether a partition can never host the configuration
// directory. EFI system partitions and LVM physical volumes are excluded:
// the former by definition, the latter because mounting them directly is
// meaningless.
func Skip(p types.Partition) bool {
	return p.HasFlag("esp") || p.HasFlag("lvm")
}

// Candidates filters the partition list down to mount-worthy candidates,
// preserving the listing order.
func Candidates(partitions []types.Partition) []types.Partition {
	candidates := make([]types.Partition, 0, len(partitions))
	for _, p := range partitions {
		if Skip(p) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// PartitionPath computes the device node of a partition from the parent
// device and the partition number. NVMe namespaces end in a digit, so the
// kernel inserts a 'p' before the partition number; plain disks (sd[a-z],
// vd[a-z], ...) append the number directly.
func PartitionPath(device string, number int) string {
	delimiter := ""
	if strings.Contains(device, "nvme") {
		delimiter = "p"
	}
	return device + delimiter + strconv.Itoa(number)
}
