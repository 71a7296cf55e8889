package netconfig

import (
	"fmt"
	"strings"

	"golang-netconfig/internal/pkg/logging"
	"golang-netconfig/internal/port"
	"golang-netconfig/internal/types"

	"github.com/sirupsen/logrus"
)

// Resolver maps hardware addresses to the interface names currently
// visible to the running system.
type Resolver struct {
	networkMgr port.NetworkManager
}

// NewResolver creates a resolver backed by the given network manager port.
func NewResolver(networkMgr port.NetworkManager) *Resolver {
	return &Resolver{networkMgr: networkMgr}
}

// ResolveDevice returns the name of the first interface whose hardware
// address matches mac. Comparison is case-insensitive. A miss returns a
// DeviceNotFoundError, which callers must treat as fatal.
func (r *Resolver) ResolveDevice(mac string) (string, error) {
	logger := logging.WithComponent("resolver")

	links, err := r.networkMgr.ListLinks()
	if err != nil {
		return "", fmt.Errorf("failed to list network links: %w", err)
	}

	for _, link := range links {
		attrs := link.Attrs()
		hwAddr := attrs.HardwareAddr.String()
		logger.WithFields(logrus.Fields{
			"device": attrs.Name,
			"hwaddr": hwAddr,
		}).Debug("Inspecting device")

		// Loopback and software interfaces report an empty address.
		if hwAddr == "" {
			continue
		}
		if strings.EqualFold(hwAddr, mac) {
			return attrs.Name, nil
		}
	}

	return "", &types.DeviceNotFoundError{MAC: mac}
}
