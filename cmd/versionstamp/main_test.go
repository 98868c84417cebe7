package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/versionstamp"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPrintCmd(t *testing.T) {
	stdout, _, err := execute(t, "print", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", stdout)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "versionstamp version dev, commit none, built at unknown\n", stdout)
}

func TestRootCmd_Stamp(t *testing.T) {
	outDir := t.TempDir()

	_, stderr, err := execute(t,
		"--out-dir", outDir,
		"--version", "2020.0.0",
		"--target", "linux/amd64",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote product version")

	data, err := os.ReadFile(filepath.Join(outDir, versionstamp.ProductVersionFile))
	require.NoError(t, err)
	assert.Equal(t, "2020.0", string(data))
}

func TestRootCmd_Windows(t *testing.T) {
	outDir := t.TempDir()
	sysoDir := t.TempDir()

	_, _, err := execute(t,
		"--out-dir", outDir,
		"--version", "1.0.0",
		"--target", "windows/amd64",
		"--syso-dir", sysoDir,
		"--icon=",
	)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "product-version.txt"))
	assert.FileExists(t, filepath.Join(sysoDir, "resource_windows_amd64.syso"))
}

func TestRootCmd_MissingIconFails(t *testing.T) {
	outDir := t.TempDir()

	_, stderr, err := execute(t,
		"--out-dir", outDir,
		"--version", "1.0.0",
		"--target", "windows/amd64",
		"--syso-dir", t.TempDir(),
		"--icon", filepath.Join(outDir, "missing.ico"),
	)

	var vsErr *versionstamp.Error
	require.ErrorAs(t, err, &vsErr)
	assert.Equal(t, versionstamp.KindCompile, vsErr.Kind)
	assert.Contains(t, stderr, "build step failed")
}

func TestRootCmd_InvalidTarget(t *testing.T) {
	_, stderr, err := execute(t,
		"--out-dir", t.TempDir(),
		"--version", "1.0.0",
		"--target", "windows",
	)
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestGitVersion(t *testing.T) {
	orig := runGit
	t.Cleanup(func() { runGit = orig })

	tests := []struct {
		name     string
		describe string
		pointsAt string
		want     string
	}{
		{name: "describe", describe: "v1.2.0", want: "1.2.0"},
		{name: "tag at HEAD", pointsAt: "v2.0.0\nlatest", want: "2.0.0"},
		{name: "no tags", want: fallbackVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runGit = func(args ...string) (string, error) {
				out := tt.pointsAt
				if args[0] == "describe" {
					out = tt.describe
				}
				if out == "" {
					return "", errors.New("exit status 128")
				}
				return out, nil
			}
			assert.Equal(t, tt.want, gitVersion())
		})
	}
}
