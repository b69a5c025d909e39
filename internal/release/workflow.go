package release

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/relprep/relprep/internal/errors"
	"github.com/relprep/relprep/internal/output"
	"github.com/relprep/relprep/internal/tag"
)

// totalSteps is the number of displayed workflow steps.
const totalSteps = 7

// Run executes the full release preparation workflow. explicitTag is the
// optional version argument from the command line; when empty, the next
// version is suggested from commit history and confirmed interactively.
//
// Mutations begin only after validation succeeds. Once they begin there is
// no rollback: a failure leaves the tree partially prepared for manual
// intervention, which is accepted behavior.
func (r *Runner) Run(ctx context.Context, explicitTag string) error {
	if err := r.preflight(ctx); err != nil {
		return err
	}

	candidate, err := r.resolveVersion(ctx, explicitTag)
	if err != nil {
		return err
	}

	releaseTag, err := r.validateVersion(candidate)
	if err != nil {
		return err
	}

	if r.dryRun {
		return r.printPlan(releaseTag)
	}

	if err := r.writeRelease(ctx, releaseTag); err != nil {
		return err
	}

	description, err := r.describeTag(ctx, releaseTag)
	if err != nil {
		return err
	}

	if err := r.createTag(ctx, releaseTag, description); err != nil {
		return err
	}

	return r.printSummary(releaseTag)
}

// preflight verifies the tree is clean and the external tools are installed.
// No side effects on failure.
func (r *Runner) preflight(ctx context.Context) error {
	output.PrintStepHeader(r.out, 1, totalSteps, "Checking working tree")

	if !r.lookPath("git") {
		return errors.NewPreconditionError("git command not found",
			"Install git and ensure it is in your PATH")
	}
	if !r.lookPath(r.cliff.Bin()) {
		return errors.ChangelogToolNotFound(r.cliff.Bin())
	}

	files, err := r.git.UncommittedFiles(ctx)
	if err != nil {
		return errors.Wrap(err, errors.External)
	}
	if len(files) > 0 {
		return errors.DirtyWorkingTree(files)
	}

	return nil
}

// resolveVersion returns the candidate version tag: the explicit argument
// verbatim, or the generator's suggestion confirmed by the operator.
func (r *Runner) resolveVersion(ctx context.Context, explicitTag string) (string, error) {
	output.PrintStepHeader(r.out, 2, totalSteps, "Resolving version")

	if explicitTag != "" {
		return explicitTag, nil
	}

	r.progress.Start("Suggesting next version from commit history")
	suggested, err := r.cliff.SuggestVersion(ctx)
	if err != nil {
		r.progress.StopFailure("Version suggestion failed")
		return "", errors.ChangelogToolFailed(err)
	}
	r.progress.StopSuccess("Suggested version " + suggested)

	if r.cfg.SkipConfirmations {
		fmt.Fprintf(r.out, "Using suggested version %s\n", suggested)
		return suggested, nil
	}

	if !r.confirmVersion(suggested) {
		return "", errors.ReleaseDeclined()
	}

	return suggested, nil
}

// confirmVersion asks the operator to accept the suggested version.
// Empty input counts as yes; matching is case-insensitive.
func (r *Runner) confirmVersion(suggested string) bool {
	fmt.Fprintf(r.out, "Release %s? [Y/n]: ", suggested)

	reader := bufio.NewReader(r.in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "" || answer == "y" || answer == "yes"
}

// validateVersion checks the candidate's shape and that it advances past the
// latest existing tag. Runs before any mutation.
func (r *Runner) validateVersion(candidate string) (tag.Tag, error) {
	output.PrintStepHeader(r.out, 3, totalSteps, "Validating version")

	t, err := tag.Parse(candidate)
	if err != nil {
		return "", err
	}

	exists, err := r.repo.TagExists(t.String())
	if err != nil {
		return "", errors.Wrap(err, errors.External)
	}
	if exists {
		return "", errors.TagAlreadyExists(t.String())
	}

	latest, err := r.repo.LatestTag()
	if err != nil {
		return "", errors.Wrap(err, errors.External)
	}
	if !t.NewerThan(latest) {
		return "", errors.VersionNotNewer(t.String(), latest)
	}

	return t, nil
}

// writeRelease applies the release mutations: manifest version, changelog
// regeneration, and the release commit. Steps are irreversible once started.
func (r *Runner) writeRelease(ctx context.Context, t tag.Tag) error {
	output.PrintStepHeader(r.out, 4, totalSteps, "Writing release "+t.String())

	if err := r.manifest.SetVersion(ctx, t.Numeric()); err != nil {
		return errors.ManifestUpdateFailed(r.manifest.Describe(t.Numeric()), err)
	}

	r.progress.Start("Regenerating " + r.cfg.ChangelogFile)
	if err := r.cliff.RegenerateChangelog(ctx, t.String(), r.cfg.ChangelogFile); err != nil {
		r.progress.StopFailure("Changelog regeneration failed")
		return errors.ChangelogToolFailed(err)
	}
	r.progress.StopSuccess("Regenerated " + r.cfg.ChangelogFile)

	if err := r.git.StageAll(ctx); err != nil {
		return errors.GitCommandFailed([]string{"add", "-A"}, err)
	}

	message := r.commitMessage(t)
	if err := r.git.Commit(ctx, message); err != nil {
		return errors.GitCommandFailed([]string{"commit"}, err)
	}

	output.PrintSuccess(r.out, "Committed: "+message)
	return nil
}

// describeTag renders the templated tag description from unreleased commits.
func (r *Runner) describeTag(ctx context.Context, t tag.Tag) (string, error) {
	output.PrintStepHeader(r.out, 5, totalSteps, "Rendering tag description")

	description, err := r.cliff.TagDescription(ctx, t.String())
	if err != nil {
		return "", errors.ChangelogToolFailed(err)
	}
	return description, nil
}

// createTag creates the annotated (and by default signed) release tag.
// The release commit remains in history if tagging fails.
func (r *Runner) createTag(ctx context.Context, t tag.Tag, description string) error {
	output.PrintStepHeader(r.out, 6, totalSteps, "Creating tag "+t.String())

	if err := r.git.CreateTag(ctx, t.String(), tagMessage(t, description), r.cfg.SignTags); err != nil {
		return errors.TagSigningFailed(t.String(), err)
	}

	output.PrintSuccess(r.out, "Tagged "+t.String())
	return nil
}

// commitMessage builds the release commit subject in the fixed format.
func (r *Runner) commitMessage(t tag.Tag) string {
	marker := r.cfg.CommitMarker
	if marker != "" {
		marker += " "
	}
	return fmt.Sprintf("%schore(release): prepare for %s", marker, t)
}

// tagMessage composes the two-part tag annotation.
func tagMessage(t tag.Tag, description string) string {
	if description == "" {
		return "Release " + t.String()
	}
	return "Release " + t.String() + "\n\n" + description
}

// printPlan reports the commands a real run would execute.
func (r *Runner) printPlan(t tag.Tag) error {
	fmt.Fprintf(r.out, "\nDry run: release %s would execute:\n", t)
	output.PrintExecutingCommand(r.out, r.manifest.Describe(t.Numeric()))
	output.PrintExecutingCommand(r.out,
		fmt.Sprintf("%s --tag %s --output %s", r.cliff.Bin(), t, r.cfg.ChangelogFile))
	output.PrintExecutingCommand(r.out, "git add -A")
	output.PrintExecutingCommand(r.out, fmt.Sprintf("git commit -m %q", r.commitMessage(t)))
	if r.cfg.SignTags {
		output.PrintExecutingCommand(r.out, "git tag -s "+t.String())
	} else {
		output.PrintExecutingCommand(r.out, "git tag -a "+t.String())
	}
	return nil
}
