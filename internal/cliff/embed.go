package cliff

import (
	_ "embed"
)

// The two rendering templates handed to the changelog generator. They are
// injected via the GIT_CLIFF__CHANGELOG__BODY environment variable so a
// repository's own cliff.toml keeps control of commit parsing while relprep
// controls the output shape.

//go:embed templates/tag_message.tera
var tagMessageTemplate string

//go:embed templates/changelog_body.tera
var changelogBodyTemplate string

// TagMessageTemplate returns the template used to render the tag annotation:
// breaking changes surface first under a distinct header, then all commits
// grouped by category, each breaking commit prefixed with a marker.
func TagMessageTemplate() string {
	return tagMessageTemplate
}

// ChangelogBodyTemplate returns the per-release body template used when the
// changelog file is regenerated: version-and-date header (or an unreleased
// placeholder), breaking-changes block, grouped entries with optional scope
// and truncated commit identifier suffix.
func ChangelogBodyTemplate() string {
	return changelogBodyTemplate
}
