//go:build unit

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_ListLinks(t *testing.T) {
	adapter := NewManagerAdapter()

	links, err := adapter.ListLinks()
	if err != nil {
		t.Skip("Netlink not available, skipping test")
	}

	// Every Linux system has at least the loopback device.
	assert.NotEmpty(t, links)

	found := false
	for _, link := range links {
		if link.Attrs().Name == "lo" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected loopback device in link list")
}
