// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netconfig/internal/types"
)

// NetconfigWriter is the primary port for writing network configuration
// onto the install disk. Implementations must validate every port before
// touching the filesystem: a resolution or rendering failure leaves the
// target disk untouched.
type NetconfigWriter interface {
	// WriteNetconfig renders one config file per port and replaces the
	// managed config files on the install disk with them. It runs at most
	// once per deployment and blocks until done.
	WriteNetconfig(ctx context.Context, ports []types.Port) error
}
