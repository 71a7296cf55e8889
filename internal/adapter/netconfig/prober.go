package netconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"golang-netconfig/internal/pkg/blockdev"
	"golang-netconfig/internal/pkg/logging"
	"golang-netconfig/internal/port"
	"golang-netconfig/internal/types"

	"github.com/sirupsen/logrus"
)

// Prober locates the partition of the install device that carries the
// configuration directory, by trial-mounting candidate partitions in
// listing order. At most one partition is mounted at a time, and every
// mount is released before the prober returns.
type Prober struct {
	diskMgr port.DiskManager
	mounter port.Mounter
	fileMgr port.FileManager
}

// NewProber creates a prober over the given disk, mount and file ports.
func NewProber(diskMgr port.DiskManager, mounter port.Mounter, fileMgr port.FileManager) *Prober {
	return &Prober{
		diskMgr: diskMgr,
		mounter: mounter,
		fileMgr: fileMgr,
	}
}

// WithConfigDir mounts candidate partitions of rootDevice until one
// contains subPath, then invokes fn with the joined path while the mount is
// held. The partition is unmounted when fn returns, whether or not fn
// failed. A mount failure on one candidate is recoverable and moves the
// scan to the next one; exhausting all candidates yields a
// ConfigPathNotFoundError and guarantees fn was never called.
func (p *Prober) WithConfigDir(ctx context.Context, rootDevice, subPath string, fn func(confPath string) error) error {
	logger := logging.WithComponent("prober")

	partitions, err := p.diskMgr.ListPartitions(ctx, rootDevice)
	if err != nil {
		return fmt.Errorf("failed to list partitions on %s: %w", rootDevice, err)
	}

	for _, part := range partitions {
		if blockdev.Skip(part) {
			logger.WithField("partition", part.String()).Debug("Skipping partition")
			continue
		}

		partPath := blockdev.PartitionPath(rootDevice, part.Number)
		mountPoint, err := p.mounter.Mount(ctx, partPath)
		if err != nil {
			logger.WithError(err).WithField("partition", part.String()).
				Warn("Failure when inspecting partition")
			continue
		}

		found, err := p.probeMounted(ctx, mountPoint, partPath, subPath, fn)
		if found {
			return err
		}
	}

	return &types.ConfigPathNotFoundError{Path: subPath, Partitions: partitions}
}

// probeMounted checks one mounted partition for subPath and runs fn against
// it on a hit. The deferred unmount covers every exit path, including an
// error from fn.
func (p *Prober) probeMounted(ctx context.Context, mountPoint, partPath, subPath string, fn func(string) error) (found bool, err error) {
	logger := logging.WithComponent("prober")

	defer func() {
		if umountErr := p.mounter.Unmount(ctx, mountPoint); umountErr != nil {
			logger.WithError(umountErr).WithField("mount_point", mountPoint).
				Warn("Failed to unmount partition")
		}
	}()

	confPath := filepath.Join(mountPoint, subPath)
	logger.WithFields(logrus.Fields{
		"path":      confPath,
		"partition": partPath,
	}).Debug("Checking for config path")

	if !p.fileMgr.IsDir(confPath) {
		return false, nil
	}

	logger.WithFields(logrus.Fields{
		"path":      confPath,
		"partition": partPath,
	}).Info("Config path found")

	return true, fn(confPath)
}
