package versionstamp

import (
	"os"

	"github.com/akavel/rsrc/ico"
	"github.com/pkg/errors"
)

// Compiler turns a descriptor into a resource object the linker picks up.
type Compiler interface {
	Compile(d *Descriptor, target Target, out string) error
}

// SysoCompiler compiles descriptors into COFF .syso objects with
// goversioninfo.
type SysoCompiler struct{}

var _ Compiler = SysoCompiler{}

func (SysoCompiler) Compile(d *Descriptor, target Target, out string) error {
	const op = "compile resources"

	if d.IconPath != "" {
		if err := checkIcon(d.IconPath); err != nil {
			return compileError(op, err)
		}
	}

	vi := d.VersionInfo()
	vi.Build()
	vi.Walk()

	if err := vi.WriteSyso(out, target.GOARCH); err != nil {
		return compileError(op, errors.Wrapf(err, "write %s for %s", out, target))
	}
	return nil
}

// checkIcon makes sure path names a readable .ico file with at least one
// image, so a bad icon fails with a clear message.
func checkIcon(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "icon")
	}
	defer f.Close()

	entries, err := ico.DecodeHeaders(f)
	if err != nil {
		return errors.Wrapf(err, "icon %s", path)
	}
	if len(entries) == 0 {
		return errors.Errorf("icon %s contains no images", path)
	}
	return nil
}
