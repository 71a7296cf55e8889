//go:build unit

package netconfig

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"golang-netconfig/internal/mock"
	"golang-netconfig/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func dummyLink(t *testing.T, name, mac string) netlink.Link {
	t.Helper()

	attrs := netlink.LinkAttrs{Name: name}
	if mac != "" {
		hwAddr, err := net.ParseMAC(mac)
		require.NoError(t, err)
		attrs.HardwareAddr = hwAddr
	}
	return &netlink.Dummy{LinkAttrs: attrs}
}

func TestResolver_ResolveDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	networkMgr := mock.NewMockNetworkManager(ctrl)
	resolver := NewResolver(networkMgr)

	links := []netlink.Link{
		dummyLink(t, "lo", ""),
		dummyLink(t, "eth0", "aa:bb:cc:dd:ee:ff"),
		dummyLink(t, "eth1", "52:54:00:12:34:56"),
	}

	t.Run("ExactMatch", func(t *testing.T) {
		networkMgr.EXPECT().ListLinks().Return(links, nil)

		device, err := resolver.ResolveDevice("52:54:00:12:34:56")
		require.NoError(t, err)
		assert.Equal(t, "eth1", device)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		networkMgr.EXPECT().ListLinks().Return(links, nil)

		device, err := resolver.ResolveDevice("AA:BB:CC:DD:EE:FF")
		require.NoError(t, err)
		assert.Equal(t, "eth0", device)
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		duplicated := []netlink.Link{
			dummyLink(t, "eth2", "aa:bb:cc:dd:ee:ff"),
			dummyLink(t, "eth3", "aa:bb:cc:dd:ee:ff"),
		}
		networkMgr.EXPECT().ListLinks().Return(duplicated, nil)

		device, err := resolver.ResolveDevice("aa:bb:cc:dd:ee:ff")
		require.NoError(t, err)
		assert.Equal(t, "eth2", device)
	})

	t.Run("NotFound", func(t *testing.T) {
		networkMgr.EXPECT().ListLinks().Return(links, nil)

		_, err := resolver.ResolveDevice("00:00:00:00:00:01")
		require.Error(t, err)

		var notFound *types.DeviceNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "00:00:00:00:00:01", notFound.MAC)
	})

	t.Run("EnumerationFailure", func(t *testing.T) {
		networkMgr.EXPECT().ListLinks().Return(nil, fmt.Errorf("netlink: permission denied"))

		_, err := resolver.ResolveDevice("aa:bb:cc:dd:ee:ff")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list network links")
	})
}
