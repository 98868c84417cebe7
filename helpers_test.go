package versionstamp_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestIcon writes a 1x1 32-bit icon into dir and returns its path.
func writeTestIcon(t *testing.T, dir string) string {
	t.Helper()

	const (
		headerSize = 40
		pixelSize  = 4
		maskSize   = 4 // one row of AND mask, padded to 32 bits
		imageSize  = headerSize + pixelSize + maskSize
	)

	var b bytes.Buffer
	le := func(v any) { require.NoError(t, binary.Write(&b, binary.LittleEndian, v)) }

	// ICONDIR
	le(uint16(0))
	le(uint16(1))
	le(uint16(1))

	// ICONDIRENTRY
	b.Write([]byte{1, 1, 0, 0})
	le(uint16(1))
	le(uint16(32))
	le(uint32(imageSize))
	le(uint32(6 + 16))

	// BITMAPINFOHEADER, height doubled for the mask
	le(uint32(headerSize))
	le(int32(1))
	le(int32(2))
	le(uint16(1))
	le(uint16(32))
	le(uint32(0))
	le(uint32(pixelSize + maskSize))
	le(int32(0))
	le(int32(0))
	le(uint32(0))
	le(uint32(0))

	b.Write([]byte{0x00, 0x80, 0xff, 0xff}) // BGRA
	b.Write([]byte{0, 0, 0, 0})

	path := filepath.Join(dir, "icon.ico")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
	return path
}
