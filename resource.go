package versionstamp

import (
	"encoding/json"
	"os"

	"github.com/josephspurrier/goversioninfo"
	"github.com/pkg/errors"
)

// DefaultIconPath is where the application icon lives relative to the
// directory the step runs in.
const DefaultIconPath = "../dist-assets/icon.ico"

// Primary and sub-language identifiers from winnt.h.
const (
	LangEnglish      = 0x09
	SublangEnglishUS = 0x01
)

// LangID is a Windows language identifier.
type LangID uint16

// MakeLangID combines a primary language and a sublanguage the way the
// MAKELANGID macro does.
func MakeLangID(primary, sub uint16) LangID {
	return LangID(sub<<10 | primary)
}

// Primary returns the primary language part of id.
func (id LangID) Primary() uint16 { return uint16(id) & 0x3ff }

// Sub returns the sublanguage part of id.
func (id LangID) Sub() uint16 { return uint16(id) >> 10 }

// Metadata holds the descriptive strings stored next to the version.
type Metadata struct {
	IconPath         string
	CompanyName      string
	ProductName      string
	FileDescription  string
	LegalCopyright   string
	InternalName     string
	OriginalFilename string
}

// Descriptor describes the resources embedded into a Windows binary.
type Descriptor struct {
	Metadata

	ProductVersion string
	Fixed          FixedVersion
	Lang           LangID
}

// NewDescriptor returns a descriptor for productVersion with English (US)
// as its language. The numeric fixed version is taken from rawVersion.
func NewDescriptor(rawVersion, productVersion string, meta Metadata) *Descriptor {
	return &Descriptor{
		Metadata:       meta,
		ProductVersion: productVersion,
		Fixed:          ParseFixedVersion(rawVersion),
		Lang:           MakeLangID(LangEnglish, SublangEnglishUS),
	}
}

// VersionInfo converts d into goversioninfo's configuration structure.
func (d *Descriptor) VersionInfo() *goversioninfo.VersionInfo {
	fv := goversioninfo.FileVersion{
		Major: d.Fixed.Major,
		Minor: d.Fixed.Minor,
		Patch: d.Fixed.Patch,
		Build: d.Fixed.Build,
	}
	return &goversioninfo.VersionInfo{
		IconPath: d.IconPath,
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion:    fv,
			ProductVersion: fv,
			FileFlagsMask:  "3f",
			FileFlags:      "00",
			FileOS:         "040004", // VOS_NT_WINDOWS32
			FileType:       "01",     // VFT_APP
			FileSubType:    "00",
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			CompanyName:      d.CompanyName,
			FileDescription:  d.FileDescription,
			FileVersion:      d.ProductVersion,
			InternalName:     d.InternalName,
			LegalCopyright:   d.LegalCopyright,
			OriginalFilename: d.OriginalFilename,
			ProductName:      d.ProductName,
			ProductVersion:   d.ProductVersion,
		},
		VarFileInfo: goversioninfo.VarFileInfo{
			Translation: goversioninfo.Translation{
				LangID:    goversioninfo.LangID(d.Lang),
				CharsetID: goversioninfo.CsUnicode,
			},
		},
	}
}

// WriteJSON writes d as a versioninfo.json file understood by the
// goversioninfo command.
func (d *Descriptor) WriteJSON(path string) error {
	data, err := json.MarshalIndent(d.VersionInfo(), "", "\t")
	if err != nil {
		return compileError("write versioninfo.json", errors.Wrap(err, "marshal"))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return compileError("write versioninfo.json", err)
	}
	return nil
}
