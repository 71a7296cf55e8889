package types

import (
	"fmt"
	"strings"
)

// DeviceNotFoundError indicates that no visible network interface carries
// the requested hardware address. It is always raised before any filesystem
// mutation during validation, but can also occur during the write step when
// an interface disappears between validation and write.
type DeviceNotFoundError struct {
	MAC string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device with MAC %s was not found", e.MAC)
}

// MalformedAddressError indicates that a port's network configuration could
// not be parsed as an address with a prefix length.
type MalformedAddressError struct {
	Value string
	Err   error
}

func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("malformed network address %q: %v", e.Value, e.Err)
}

func (e *MalformedAddressError) Unwrap() error {
	return e.Err
}

// ConfigPathNotFoundError indicates that no candidate partition of the
// install device both mounted and contained the expected configuration
// directory. It carries the scanned partition list for diagnostics.
type ConfigPathNotFoundError struct {
	Path       string
	Partitions []Partition
}

func (e *ConfigPathNotFoundError) Error() string {
	scanned := make([]string, 0, len(e.Partitions))
	for _, p := range e.Partitions {
		scanned = append(scanned, p.String())
	}
	return fmt.Sprintf("no partition found with path %s, scanned: [%s]", e.Path, strings.Join(scanned, ", "))
}
