package main

// This file contains go:generate commands for embedding version metadata
// into the Windows builds of versionstamp itself.
// The icon is left out so generation works without ImageMagick or any assets.
// Run `go generate` in this directory to regenerate the resource objects.

//go:generate go run . --out-dir . --icon= --target windows/amd64 --emit-json versioninfo.json
//go:generate go run . --out-dir . --icon= --target windows/arm64
