//go:build unit

package netconfig

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang-netconfig/internal/mock"
	"golang-netconfig/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfigPath = "etc/sysconfig/network-scripts"

func TestProber_WithConfigDir(t *testing.T) {
	ctx := context.Background()

	partitions := []types.Partition{
		{Number: 1, Flags: []string{"boot", "esp"}},
		{Number: 2, Flags: nil},
		{Number: 3, Flags: nil},
	}

	t.Run("FirstCandidateWins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(partitions, nil)
		// Partition 1 is skipped outright; partition 2 satisfies the probe,
		// so partition 3 must never be mounted.
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/sda2").Return("/tmp/probe2", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe2/"+testConfigPath).Return(true),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe2").Return(nil),
		)

		var seen string
		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(confPath string) error {
			seen = confPath
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/probe2/"+testConfigPath, seen)
	})

	t.Run("MountFailureIsRecoverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(partitions, nil)
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/sda2").Return("", fmt.Errorf("mount /dev/sda2 failed: exit status 32")),
			mounter.EXPECT().Mount(ctx, "/dev/sda3").Return("/tmp/probe3", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe3/"+testConfigPath).Return(true),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe3").Return(nil),
		)

		called := false
		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(confPath string) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("MissingDirUnmountsAndContinues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(partitions, nil)
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/sda2").Return("/tmp/probe2", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe2/"+testConfigPath).Return(false),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe2").Return(nil),
			mounter.EXPECT().Mount(ctx, "/dev/sda3").Return("/tmp/probe3", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe3/"+testConfigPath).Return(true),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe3").Return(nil),
		)

		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(confPath string) error {
			assert.Equal(t, "/tmp/probe3/"+testConfigPath, confPath)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("CallbackErrorStillUnmounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(partitions, nil)
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/sda2").Return("/tmp/probe2", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe2/"+testConfigPath).Return(true),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe2").Return(nil),
		)

		callbackErr := errors.New("write failed")
		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(confPath string) error {
			return callbackErr
		})
		assert.ErrorIs(t, err, callbackErr)
	})

	t.Run("NVMeDevicePaths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/nvme0n1").
			Return([]types.Partition{{Number: 2, Flags: nil}}, nil)
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/nvme0n1p2").Return("/tmp/probe", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe/"+testConfigPath).Return(true),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe").Return(nil),
		)

		err := prober.WithConfigDir(ctx, "/dev/nvme0n1", testConfigPath, func(string) error {
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("AllCandidatesExhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(partitions, nil)
		gomock.InOrder(
			mounter.EXPECT().Mount(ctx, "/dev/sda2").Return("", fmt.Errorf("mount failed")),
			mounter.EXPECT().Mount(ctx, "/dev/sda3").Return("/tmp/probe3", nil),
			fileMgr.EXPECT().IsDir("/tmp/probe3/"+testConfigPath).Return(false),
			mounter.EXPECT().Unmount(ctx, "/tmp/probe3").Return(nil),
		)

		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(string) error {
			t.Fatal("callback must not run when no candidate matched")
			return nil
		})
		require.Error(t, err)

		var notFound *types.ConfigPathNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, testConfigPath, notFound.Path)
		assert.Equal(t, partitions, notFound.Partitions)
	})

	t.Run("ListPartitionsFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		diskMgr := mock.NewMockDiskManager(ctrl)
		mounter := mock.NewMockMounter(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		prober := NewProber(diskMgr, mounter, fileMgr)

		diskMgr.EXPECT().ListPartitions(ctx, "/dev/sda").Return(nil, fmt.Errorf("parted failed"))

		err := prober.WithConfigDir(ctx, "/dev/sda", testConfigPath, func(string) error {
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list partitions")
	})
}
