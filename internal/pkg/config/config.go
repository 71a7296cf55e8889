package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"golang-netconfig/internal/pkg/logging"
	"golang-netconfig/internal/types"

	"gopkg.in/yaml.v3"
)

// InstallConfig identifies the freshly installed disk and the directory
// searched for on its partitions.
type InstallConfig struct {
	RootDevice string `yaml:"root_device"`
	ConfigPath string `yaml:"config_path,omitempty"` // relative to the partition root; defaults to etc/sysconfig/network-scripts
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Install InstallConfig     `yaml:"install"`
	Ports   []types.Port      `yaml:"ports"`
}

// Load loads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate validates the configuration. Duplicate MAC addresses are
// rejected here: the writer names files after the resolved interface, so
// two ports with the same MAC would silently overwrite each other.
func (c *Config) Validate() error {
	if c.Install.RootDevice == "" {
		return fmt.Errorf("install.root_device is required")
	}
	if len(c.Ports) == 0 {
		return fmt.Errorf("no ports configured")
	}

	seen := make(map[string]bool, len(c.Ports))
	for i, p := range c.Ports {
		hwAddr, err := net.ParseMAC(p.MAC)
		if err != nil {
			return fmt.Errorf("port %d: invalid MAC address %q: %w", i, p.MAC, err)
		}
		key := strings.ToLower(hwAddr.String())
		if seen[key] {
			return fmt.Errorf("port %d: duplicate MAC address %q", i, p.MAC)
		}
		seen[key] = true

		if _, _, err := net.ParseCIDR(p.CIDR); err != nil {
			return fmt.Errorf("port %d: invalid CIDR %q: %w", i, p.CIDR, err)
		}
	}

	return nil
}
