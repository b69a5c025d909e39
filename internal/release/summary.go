package release

import (
	"fmt"

	"github.com/relprep/relprep/internal/git"
	"github.com/relprep/relprep/internal/output"
	"github.com/relprep/relprep/internal/tag"
)

// printSummary reports the release commit, the tag contents, and the push
// command. Read-only: the tag and commit already exist at this point, so
// summary failures only degrade the report.
func (r *Runner) printSummary(t tag.Tag) error {
	output.PrintStepHeader(r.out, 7, totalSteps, "Summary")

	if head, err := r.repo.HeadSummary(); err == nil {
		fmt.Fprintf(r.out, "Latest commit: %s\n", head)
	}

	if annotation, err := r.repo.TagAnnotation(t.String()); err == nil && annotation != "" {
		output.PrintSectionDivider(r.out, "tag "+t.String())
		fmt.Fprintln(r.out, annotation)
		output.PrintSectionDivider(r.out, "end")
	}

	fmt.Fprintf(r.out, "\nPublish with: git push %s %s && git push %s\n",
		r.cfg.Remote, t.String(), r.cfg.Remote)

	if remote, err := r.repo.RemoteURL(r.cfg.Remote); err == nil {
		fmt.Fprintf(r.out, "Release page: %s/releases/tag/%s\n", git.WebURL(remote), t.String())
	}

	return nil
}
