package versionstamp

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ProductVersion derives the user-facing product version from a raw package
// version by dropping the first ".0" only, e.g. "1.0.0" becomes "1.0".
// Strings without ".0" are returned unchanged.
func ProductVersion(raw string) string {
	return strings.Replace(raw, ".0", "", 1)
}

// FixedVersion is the four-part numeric version stored in the fixed file info
// block of a Windows resource.
type FixedVersion struct {
	Major, Minor, Patch, Build int
}

func (v FixedVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." +
		strconv.Itoa(v.Patch) + "." + strconv.Itoa(v.Build)
}

// ParseFixedVersion reads up to four dot separated numbers from version.
// A leading "v" and any semver pre-release or build suffix are ignored.
// Components that are missing or not numeric are left at 0.
func ParseFixedVersion(version string) FixedVersion {
	v := "v" + strings.TrimPrefix(version, "v")
	if semver.IsValid(v) {
		v = strings.TrimSuffix(v, semver.Build(v))
		v = strings.TrimSuffix(v, semver.Prerelease(v))
	} else if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	var fv FixedVersion
	fields := []*int{&fv.Major, &fv.Minor, &fv.Patch, &fv.Build}
	for i, part := range strings.SplitN(v[1:], ".", len(fields)) {
		if n, err := strconv.Atoi(part); err == nil && n >= 0 {
			*fields[i] = n
		}
	}
	return fv
}
