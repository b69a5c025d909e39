package git

import "strings"

// WebURL converts a configured remote URL into a browsable HTTPS URL.
// SCP-style SSH remotes (git@host:owner/repo.git) become
// https://host/owner/repo; every other form passes through with only a
// trailing ".git" suffix stripped.
func WebURL(remote string) string {
	url := strings.TrimSuffix(strings.TrimSpace(remote), ".git")

	rest, ok := strings.CutPrefix(url, "git@")
	if !ok {
		return url
	}

	host, path, found := strings.Cut(rest, ":")
	if !found {
		return url
	}

	return "https://" + host + "/" + path
}
