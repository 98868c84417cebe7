// Package versionstamp stamps build artifacts with a product version.
//
// A run writes the product version derived from the package version to
// product-version.txt in the build output directory. When the target is
// Windows it also compiles version and icon resources into a .syso object
// that go build links into the binary. Both artifacts carry the same
// product version string.
package versionstamp

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// Config is everything a run needs. Nothing is read from the environment.
type Config struct {
	// OutDir is the existing build output directory.
	OutDir string
	// Version is the raw package version, e.g. "1.0.0".
	Version string
	// Target selects whether resources are compiled.
	Target Target

	// Resource metadata, used only for targets that embed resources.
	Resource Metadata
	// SysoDir is where the resource object is written. Defaults to ".".
	SysoDir string
	// JSONPath, if set, also receives the descriptor as versioninfo.json.
	JSONPath string

	// Compiler defaults to SysoCompiler.
	Compiler Compiler
	Logger   zerolog.Logger
}

// Result lists what a run produced.
type Result struct {
	ProductVersion string
	VersionFile    string
	// Descriptor and SysoFile are set only when resources were compiled.
	Descriptor *Descriptor
	SysoFile   string
	JSONFile   string
}

// Run stamps the product version and, for Windows targets, compiles the
// resource object. It stops at the first error; callers must treat any
// error as fatal to the build.
func Run(cfg *Config) (*Result, error) {
	log := cfg.Logger

	productVersion := ProductVersion(cfg.Version)
	log.Debug().
		Str("raw", cfg.Version).
		Str("product", productVersion).
		Msg("derived product version")

	path, err := WriteProductVersion(cfg.OutDir, productVersion)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Str("version", productVersion).Msg("wrote product version")

	res := &Result{ProductVersion: productVersion, VersionFile: path}
	if !cfg.Target.EmbedsResources() {
		log.Debug().Stringer("target", cfg.Target).Msg("target does not embed resources")
		return res, nil
	}

	d := NewDescriptor(cfg.Version, productVersion, cfg.Resource)
	res.Descriptor = d

	if cfg.JSONPath != "" {
		if err := d.WriteJSON(cfg.JSONPath); err != nil {
			return nil, err
		}
		res.JSONFile = cfg.JSONPath
		log.Info().Str("path", cfg.JSONPath).Msg("wrote versioninfo.json")
	}

	sysoDir := cfg.SysoDir
	if sysoDir == "" {
		sysoDir = "."
	}
	out := filepath.Join(sysoDir, cfg.Target.SysoName())

	compiler := cfg.Compiler
	if compiler == nil {
		compiler = SysoCompiler{}
	}
	if err := compiler.Compile(d, cfg.Target, out); err != nil {
		return nil, err
	}
	res.SysoFile = out
	log.Info().
		Str("path", out).
		Str("icon", d.IconPath).
		Uint16("lang", uint16(d.Lang)).
		Msg("compiled windows resources")

	return res, nil
}
