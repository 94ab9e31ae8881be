// Package github implements the token-driven REST backend.
package github

import (
	"context"
	"errors"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/intres/repoship/internal/domain/entities"
	"github.com/intres/repoship/internal/domain/repositories"
)

const backendName = "api"

// APIBackend drives the hosting platform through its REST API with a
// bearer token. Suited to non-interactive environments.
type APIBackend struct {
	token  string
	client *gh.Client
}

var _ repositories.RemoteBackend = (*APIBackend)(nil)

// New creates a REST backend authenticated with the given token.
func New(token string) repositories.RemoteBackend {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return newAPIBackend(token, gh.NewClient(tc))
}

func newAPIBackend(token string, client *gh.Client) *APIBackend {
	return &APIBackend{token: token, client: client}
}

func (b *APIBackend) Name() string { return backendName }

func (b *APIBackend) RequiredTools() []string { return []string{"git"} }

// ValidateCredential round-trips the token through the identity
// endpoint; the response must carry a login.
func (b *APIBackend) ValidateCredential(ctx context.Context) error {
	if b.token == "" {
		return entities.NewStageError(
			entities.KindInvalidCredential,
			"no bearer token: set GITHUB_TOKEN (or GH_TOKEN)",
		)
	}

	user, _, err := b.client.Users.Get(ctx, "")
	if err != nil {
		return entities.WrapStageError(
			entities.KindInvalidCredential,
			"identity query failed: "+remoteMessage(err),
			err,
		)
	}
	if user.GetLogin() == "" {
		return entities.NewStageError(
			entities.KindInvalidCredential,
			"identity response carried no login",
		)
	}
	return nil
}

// CreateRepository issues the creation call directly; a structured
// error message in the response is authoritative failure regardless of
// transport status code.
func (b *APIBackend) CreateRepository(ctx context.Context, desc entities.RepositoryDescriptor) (string, error) {
	repo := &gh.Repository{
		Name:        gh.String(desc.Name),
		Description: gh.String(desc.Description),
		Homepage:    gh.String(""),
		Private:     gh.Bool(desc.Visibility == entities.VisibilityPrivate),
		HasIssues:   gh.Bool(true),
		HasProjects: gh.Bool(true),
		HasWiki:     gh.Bool(false),
		AutoInit:    gh.Bool(false),
	}

	created, _, err := b.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return "", remoteFailure(err)
	}

	url := created.GetHTMLURL()
	if url == "" {
		url = desc.HTMLURL()
	}
	return url, nil
}

func (b *APIBackend) OpenPullRequest(ctx context.Context, desc entities.RepositoryDescriptor, spec entities.PullRequestSpec) (*entities.PullRequest, error) {
	pr, _, err := b.client.PullRequests.Create(ctx, desc.Owner, desc.Name, &gh.NewPullRequest{
		Title:               gh.String(spec.Title),
		Body:                gh.String(spec.Body),
		Head:                gh.String(spec.Head.Name),
		Base:                gh.String(spec.Base.Name),
		MaintainerCanModify: gh.Bool(true),
	})
	if err != nil {
		return nil, remoteFailure(err)
	}

	return &entities.PullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

// PushURL embeds the bearer token in the remote endpoint so pushes
// authenticate without a credential helper. The token therefore ends up
// visible in the local remote configuration; this mirrors the original
// driver and is documented in the README rather than silently changed.
func (b *APIBackend) PushURL(desc entities.RepositoryDescriptor) string {
	return strings.Replace(
		desc.CloneURL(),
		"https://",
		"https://x-access-token:"+b.token+"@",
		1,
	)
}

// remoteFailure maps a transport error onto the stage taxonomy: a
// platform message saying the name is taken becomes AlreadyExists,
// everything else RemoteError with the message text verbatim.
func remoteFailure(err error) *entities.StageError {
	msg := remoteMessage(err)
	if strings.Contains(strings.ToLower(msg), "already exists") {
		return entities.WrapStageError(entities.KindAlreadyExists, msg, err)
	}
	return entities.WrapStageError(entities.KindRemoteError, msg, err)
}

// remoteMessage extracts the structured error-message field from a
// platform response, falling back to the raw error text.
func remoteMessage(err error) string {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		parts := []string{}
		if errResp.Message != "" {
			parts = append(parts, errResp.Message)
		}
		for _, e := range errResp.Errors {
			if e.Message != "" {
				parts = append(parts, e.Message)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ": ")
		}
	}
	return err.Error()
}
