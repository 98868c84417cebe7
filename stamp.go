package versionstamp

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ProductVersionFile is the name of the file written into the build output
// directory.
const ProductVersionFile = "product-version.txt"

// WriteProductVersion writes version, byte for byte, to
// product-version.txt inside dir and returns the path of the written file.
//
// dir must already exist. The file is replaced atomically, so a failed write
// leaves either the previous file or no file at all, never a truncated one.
func WriteProductVersion(dir, version string) (string, error) {
	const op = "write product version"

	info, err := os.Stat(dir)
	if err != nil {
		return "", stampError(op, errors.Wrap(err, "output directory"))
	}
	if !info.IsDir() {
		return "", stampError(op, errors.Errorf("output directory %s is not a directory", dir))
	}

	path := filepath.Join(dir, ProductVersionFile)
	if err := writeFileAtomic(path, []byte(version)); err != nil {
		return "", stampError(op, err)
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	return nil
}
