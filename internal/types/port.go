// Package types defines common types used across the application.
package types

import (
	"fmt"
	"strings"
)

// Port pairs a physical NIC's MAC address with the static addressing it
// should receive. Identity is the MAC address; callers must not supply two
// ports with the same MAC within one invocation.
type Port struct {
	MAC  string `yaml:"mac"`  // hardware address in colon-separated notation (e.g., "52:54:00:12:34:56")
	CIDR string `yaml:"cidr"` // address with prefix length (e.g., "192.168.1.10/24")
}

// Partition describes one partition of a block device as reported by the
// partition-listing collaborator.
type Partition struct {
	Number int
	Flags  []string
}

// HasFlag reports whether the partition carries the given flag.
func (p Partition) HasFlag(flag string) bool {
	for _, f := range p.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// String renders the partition for log and error messages.
func (p Partition) String() string {
	return fmt.Sprintf("{number: %d, flags: [%s]}", p.Number, strings.Join(p.Flags, ", "))
}
