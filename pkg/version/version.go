package version

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidFormat indicates a version string that does not match the
// X.Y.Z or X.Y.Z-pre.N shape.
var ErrInvalidFormat = errors.New("invalid version format")

// versionPattern is anchored on both ends: no prefix, no suffix, no
// whitespace, no normalization. Leading zeros are accepted verbatim.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[A-Za-z0-9.-]+)?$`)

// Validate checks that v is an acceptable release version. The string is
// used verbatim everywhere downstream, so nothing is stripped or rewritten
// here.
func Validate(v string) error {
	if !versionPattern.MatchString(v) {
		return fmt.Errorf("%w: %s (expected format: X.Y.Z or X.Y.Z-pre.N)", ErrInvalidFormat, v)
	}
	return nil
}

// Increment classifies the jump from current to proposed for display
// purposes. It never gates the pipeline; unparseable versions just show up
// as a generic update.
func Increment(current, proposed string) string {
	if current == "-" || current == "" {
		return "initial"
	}

	currentVer, err1 := semver.NewVersion(current)
	proposedVer, err2 := semver.NewVersion(proposed)
	if err1 != nil || err2 != nil {
		return "update"
	}

	if currentVer.Major() != proposedVer.Major() {
		return "major"
	} else if currentVer.Minor() != proposedVer.Minor() {
		return "minor"
	} else if currentVer.Patch() != proposedVer.Patch() {
		return "patch"
	} else if currentVer.Prerelease() != proposedVer.Prerelease() {
		return "prerelease"
	}

	return "-"
}
