// Package ifcfg renders legacy sysconfig-style network interface
// configuration files. Rendering is pure: it never touches the filesystem.
package ifcfg

import (
	"fmt"
	"net"
	"strings"

	"golang-netconfig/internal/types"
)

// DefaultConfigPath is the directory searched for on the install disk,
// relative to the partition's filesystem root.
const DefaultConfigPath = "etc/sysconfig/network-scripts"

// Prefix marks a config file as managed by this tool. Managed files are
// purged and recreated on every run.
const Prefix = "ifcfg-"

// The leading newline is part of the historical file format and is kept.
const template = `
DEVICE=%s
BOOTPROTO=
HWADDR=%s
IPADDR=%s
NETMASK=%s
ONBOOT=yes
NM_CONTROLLED=yes
`

// Render produces the config file content for one port. The device name is
// resolved by the caller; cidr supplies the address and the prefix length
// the netmask is derived from. Only IPv4 is supported by the legacy format.
func Render(device, mac, cidr string) (string, error) {
	ip, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", &types.MalformedAddressError{Value: cidr, Err: err}
	}

	ip4 := ip.To4()
	if ip4 == nil {
		return "", &types.MalformedAddressError{
			Value: cidr,
			Err:   fmt.Errorf("only IPv4 addresses are supported"),
		}
	}

	netmask := net.IP(ipNet.Mask).String()
	return fmt.Sprintf(template, device, mac, ip4.String(), netmask), nil
}

// FileName returns the managed file name for a resolved interface name.
func FileName(device string) string {
	return Prefix + device
}

// IsManaged reports whether a directory entry is a managed config file.
func IsManaged(name string) bool {
	return strings.HasPrefix(name, Prefix)
}
