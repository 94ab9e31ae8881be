package entities

import (
	"fmt"
	"strings"
)

// BranchRef names a branch and, for derived branches, the branch it was
// cut from.
type BranchRef struct {
	Name string
	Base *BranchRef
}

// CommitSpec describes one commit the synchronizer records. An empty
// Paths set means "stage the whole working tree".
type CommitSpec struct {
	Message string
	Paths   []string
}

// PullRequestSpec is the creation request handed to the active backend
// once both branches are published.
type PullRequestSpec struct {
	Title string
	Body  string
	Head  BranchRef
	Base  BranchRef
}

// PullRequest is the creation result: the number and canonical URL the
// process reports as its final output.
type PullRequest struct {
	Number int
	URL    string
}

// Outcome is the payload of a fully successful run.
type Outcome struct {
	RepositoryURL string
	PullRequest   *PullRequest
}

// Artifact is one required file of the prototype project, checked for
// existence before anything mutates and listed in the PR body.
type Artifact struct {
	Path  string
	Label string
}

// RequiredArtifacts is the fixed file set the working directory must
// contain. The PR body enumerates exactly this list, so validator and
// documentation can never drift apart.
func RequiredArtifacts() []Artifact {
	return []Artifact{
		{Path: "README.md", Label: "project overview and usage"},
		{Path: "analyze.py", Label: "analysis entry point"},
		{Path: "requirements.txt", Label: "dependency manifest"},
		{Path: "data/test_sequences.csv", Label: "smoke-test dataset"},
		{Path: ".github/workflows/ci.yml", Label: "CI configuration"},
	}
}

// NewPullRequestSpec builds the single PR of the workflow: feature
// branch into primary branch, with a body listing the published
// components.
func NewPullRequestSpec(settings *Settings) PullRequestSpec {
	primary := BranchRef{Name: settings.PrimaryBranch}
	feature := BranchRef{Name: settings.FeatureBranch, Base: &primary}

	var body strings.Builder
	body.WriteString("## Prototype pipeline\n\n")
	body.WriteString("This PR publishes the prototype analysis pipeline. Components:\n\n")
	for _, artifact := range RequiredArtifacts() {
		fmt.Fprintf(&body, "- `%s` — %s\n", artifact.Path, artifact.Label)
	}
	body.WriteString("\nThe pipeline runs end to end via the CI workflow on every push.\n")

	return PullRequestSpec{
		Title: settings.PullRequestTitle,
		Body:  body.String(),
		Head:  feature,
		Base:  primary,
	}
}
