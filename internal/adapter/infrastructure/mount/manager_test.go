//go:build unit

package mount

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_Mount_InvalidDevice(t *testing.T) {
	if _, err := exec.LookPath("mount"); err != nil {
		t.Skip("mount binary not available, skipping test")
	}

	adapter := NewManagerAdapter()

	// Mounting a nonexistent device must fail with the process-execution
	// error and must not leave the temporary mount point behind.
	mountPoint, err := adapter.Mount(context.Background(), "/dev/nonexistent-netconfig-test")
	require.Error(t, err)
	assert.Empty(t, mountPoint)
	assert.Contains(t, err.Error(), "mount /dev/nonexistent-netconfig-test failed")
}

func TestManagerAdapter_Unmount_NotMounted(t *testing.T) {
	if _, err := exec.LookPath("umount"); err != nil {
		t.Skip("umount binary not available, skipping test")
	}

	adapter := NewManagerAdapter()

	err := adapter.Unmount(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}
