package cliff

import "regexp"

// prLinkRe matches pull-request hyperlinks the hosting provider injects into
// generated text, e.g. [#42](https://github.com/owner/repo/issues/42).
var prLinkRe = regexp.MustCompile(`\[#(\d+)\]\(https://github\.com/[^)]+\)`)

// RewritePullRequestLinks rewrites auto-inserted pull-request hyperlinks back
// into bare #N references, keeping the tag message readable independent of
// the hosting platform's link format.
func RewritePullRequestLinks(text string) string {
	return prLinkRe.ReplaceAllString(text, "#$1")
}
