// Package netconfig implements the netconfig writer: it resolves each
// port's MAC address to an interface name, renders the legacy config files,
// locates the partition of the install disk holding the configuration
// directory and replaces the managed files there.
package netconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"golang-netconfig/internal/pkg/ifcfg"
	"golang-netconfig/internal/pkg/logging"
	"golang-netconfig/internal/port"
	"golang-netconfig/internal/types"

	"github.com/sirupsen/logrus"
)

// Writer is the orchestrating adapter behind the NetconfigWriter port. All
// collaborators are injected at construction time.
type Writer struct {
	resolver   *Resolver
	prober     *Prober
	fileMgr    port.FileManager
	rootDevice string
	configPath string
}

// Ensure Writer implements the NetconfigWriter port
var _ port.NetconfigWriter = (*Writer)(nil)

// NewWriter creates a writer for the given install device. configPath is
// the directory searched for on the device's partitions, relative to each
// filesystem root; empty selects the sysconfig default.
func NewWriter(networkMgr port.NetworkManager, diskMgr port.DiskManager, mounter port.Mounter, fileMgr port.FileManager, rootDevice, configPath string) *Writer {
	if configPath == "" {
		configPath = ifcfg.DefaultConfigPath
	}
	return &Writer{
		resolver:   NewResolver(networkMgr),
		prober:     NewProber(diskMgr, mounter, fileMgr),
		fileMgr:    fileMgr,
		rootDevice: rootDevice,
		configPath: configPath,
	}
}

// WriteNetconfig validates and renders the config for every port, then
// purges the managed files in the located configuration directory and
// writes one file per port. Validation failures abort before any partition
// is touched. A failure during the write loop is surfaced as-is and may
// leave the directory partially written; the mount is still released.
func (w *Writer) WriteNetconfig(ctx context.Context, ports []types.Port) error {
	logger := logging.WithComponent("writer")

	// Render everything first to validate the request. Nothing below this
	// loop runs unless every MAC resolved and every CIDR parsed.
	configs := make([]string, 0, len(ports))
	for _, p := range ports {
		device, err := w.resolver.ResolveDevice(p.MAC)
		if err != nil {
			return err
		}
		config, err := ifcfg.Render(device, p.MAC, p.CIDR)
		if err != nil {
			return err
		}
		configs = append(configs, config)
	}

	return w.prober.WithConfigDir(ctx, w.rootDevice, w.configPath, func(confPath string) error {
		if err := w.purge(confPath, logger); err != nil {
			return err
		}

		for i, p := range ports {
			// Resolve again at write time: enumeration could have changed
			// since validation, and the file name must reflect the current
			// interface name.
			device, err := w.resolver.ResolveDevice(p.MAC)
			if err != nil {
				return err
			}

			filename := filepath.Join(confPath, ifcfg.FileName(device))
			logger.WithFields(logrus.Fields{
				"file": filename,
				"mac":  p.MAC,
			}).Info("Writing config")

			if err := w.fileMgr.WriteFile(filename, []byte(configs[i]), 0o644); err != nil {
				return fmt.Errorf("failed to write config %s: %w", filename, err)
			}
		}
		return nil
	})
}

// purge removes every managed config file in the directory. Individual
// removal failures are logged and ignored; a file that is already gone is
// not an error. Only a failure to list the directory at all is fatal.
func (w *Writer) purge(confPath string, logger *logrus.Entry) error {
	entries, err := w.fileMgr.ListDir(confPath)
	if err != nil {
		return fmt.Errorf("failed to list config directory %s: %w", confPath, err)
	}

	for _, entry := range entries {
		if !ifcfg.IsManaged(entry) {
			continue
		}
		logger.WithField("file", entry).Debug("Removing stale config")
		if err := w.fileMgr.Remove(filepath.Join(confPath, entry)); err != nil {
			logger.WithError(err).WithField("file", entry).Warn("Failed to remove stale config")
		}
	}
	return nil
}
