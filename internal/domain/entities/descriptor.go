package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// Visibility controls whether the remote repository is public or private.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// nameCharset covers what GitHub accepts for owner and repository names.
var nameCharset = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// RepositoryDescriptor identifies the remote repository to create.
// It is built once from CLI input and never mutated afterwards.
type RepositoryDescriptor struct {
	Owner       string
	Name        string
	Visibility  Visibility
	Description string
}

// NewRepositoryDescriptor builds a descriptor from the two positional
// CLI arguments plus the visibility and description flags.
func NewRepositoryDescriptor(owner, name string, visibility Visibility, description string) RepositoryDescriptor {
	if visibility == "" {
		visibility = VisibilityPublic
	}
	return RepositoryDescriptor{
		Owner:       strings.TrimSpace(owner),
		Name:        strings.TrimSpace(name),
		Visibility:  visibility,
		Description: description,
	}
}

// Validate checks the descriptor holds a usable owner/name pair.
func (d RepositoryDescriptor) Validate() error {
	if d.Owner == "" || d.Name == "" {
		return NewStageError(KindArgument, "OWNER and REPO_NAME must both be non-empty")
	}
	if !nameCharset.MatchString(d.Owner) {
		return NewStageError(KindArgument, fmt.Sprintf("invalid owner %q", d.Owner))
	}
	if !nameCharset.MatchString(d.Name) {
		return NewStageError(KindArgument, fmt.Sprintf("invalid repository name %q", d.Name))
	}
	return nil
}

// FullName returns the owner/name form used by the hosting platform.
func (d RepositoryDescriptor) FullName() string {
	return d.Owner + "/" + d.Name
}

// HTMLURL returns the canonical web URL of the repository.
func (d RepositoryDescriptor) HTMLURL() string {
	return "https://github.com/" + d.FullName()
}

// CloneURL returns the plain HTTPS clone endpoint of the repository.
func (d RepositoryDescriptor) CloneURL() string {
	return d.HTMLURL() + ".git"
}
