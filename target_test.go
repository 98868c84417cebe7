package versionstamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/versionstamp"
)

func TestParseTarget(t *testing.T) {
	target, err := versionstamp.ParseTarget("windows/arm64")
	require.NoError(t, err)
	assert.Equal(t, versionstamp.Target{GOOS: "windows", GOARCH: "arm64"}, target)
	assert.Equal(t, "windows/arm64", target.String())

	for _, bad := range []string{"", "windows", "windows/", "/amd64"} {
		_, err := versionstamp.ParseTarget(bad)
		assert.Error(t, err, bad)
	}
}

func TestTarget_EmbedsResources(t *testing.T) {
	assert.True(t, versionstamp.Target{GOOS: "windows", GOARCH: "386"}.EmbedsResources())
	assert.False(t, versionstamp.Target{GOOS: "linux", GOARCH: "amd64"}.EmbedsResources())
	assert.False(t, versionstamp.Target{GOOS: "darwin", GOARCH: "arm64"}.EmbedsResources())
}

func TestTarget_SysoName(t *testing.T) {
	target := versionstamp.Target{GOOS: "windows", GOARCH: "amd64"}
	assert.Equal(t, "resource_windows_amd64.syso", target.SysoName())
}
