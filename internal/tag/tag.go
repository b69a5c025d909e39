// Package tag defines the version tag value used throughout a release run.
// A tag is immutable once validated: it names the git tag and, stripped of
// its "v" prefix, the version written into the project manifest.
package tag

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/relprep/relprep/internal/errors"
)

// Pattern is the exact shape a release tag must have.
const Pattern = `^v\d+\.\d+\.\d+$`

var tagRe = regexp.MustCompile(Pattern)

// Tag is a validated release version tag (e.g. "v1.2.3").
type Tag string

// Parse validates a candidate version string and returns it as a Tag.
// The candidate must match Pattern exactly; pre-release suffixes and
// build metadata are rejected.
func Parse(candidate string) (Tag, error) {
	if !tagRe.MatchString(candidate) {
		return "", errors.InvalidVersionTag(candidate, Pattern)
	}
	return Tag(candidate), nil
}

// IsValid reports whether a string is a well-formed release tag.
func IsValid(candidate string) bool {
	return tagRe.MatchString(candidate)
}

// String returns the tag including its "v" prefix.
func (t Tag) String() string {
	return string(t)
}

// Numeric returns the bare version with the leading "v" stripped,
// as written into the project manifest.
func (t Tag) Numeric() string {
	return strings.TrimPrefix(string(t), "v")
}

// NewerThan reports whether the tag is strictly greater than latest under
// semantic version ordering. An empty latest (no previous release) always
// compares lower.
func (t Tag) NewerThan(latest string) bool {
	if latest == "" {
		return true
	}
	return semver.Compare(string(t), latest) > 0
}
