package versionstamp

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Target is the platform the binary is being built for. It is decided when
// the step is configured, not probed at run time.
type Target struct {
	GOOS   string
	GOARCH string
}

// HostTarget is the platform this process was compiled for.
func HostTarget() Target {
	return Target{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}

// ParseTarget parses a "goos/goarch" pair such as "windows/amd64".
func ParseTarget(s string) (Target, error) {
	goos, goarch, ok := strings.Cut(s, "/")
	if !ok || goos == "" || goarch == "" {
		return Target{}, errors.Errorf("invalid target %q, want goos/goarch", s)
	}
	return Target{GOOS: goos, GOARCH: goarch}, nil
}

// EmbedsResources reports whether binaries for t carry a compiled resource
// object. Only Windows does.
func (t Target) EmbedsResources() bool {
	return t.GOOS == "windows"
}

// SysoName is the object file name go build links for this target only.
func (t Target) SysoName() string {
	return fmt.Sprintf("resource_%s_%s.syso", t.GOOS, t.GOARCH)
}

func (t Target) String() string {
	return t.GOOS + "/" + t.GOARCH
}
