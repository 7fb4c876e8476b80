package manifest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v60/github"
)

// GitHubPrefix marks suite locations fetched from a GitHub repository:
// github://owner/repo/path/to/suite.yaml[@ref].
const GitHubPrefix = "github://"

// IsGitHubLocation reports whether a suite location is a GitHub reference.
func IsGitHubLocation(location string) bool {
	return strings.HasPrefix(location, GitHubPrefix)
}

// GitHubLocation is a parsed github:// suite reference.
type GitHubLocation struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// ParseGitHubLocation splits github://owner/repo/path[@ref] into its parts.
func ParseGitHubLocation(location string) (GitHubLocation, error) {
	rest := strings.TrimPrefix(location, GitHubPrefix)
	if rest == location {
		return GitHubLocation{}, fmt.Errorf("not a github location: %s", location)
	}

	var ref string
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		ref = rest[at+1:]
		rest = rest[:at]
	}

	parts := strings.SplitN(rest, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return GitHubLocation{}, fmt.Errorf(
			"invalid github location %q (expected github://owner/repo/path[@ref])", location)
	}
	return GitHubLocation{Owner: parts[0], Repo: parts[1], Path: parts[2], Ref: ref}, nil
}

// GitHubFetcher loads suite documents from GitHub repositories through the
// contents API.
type GitHubFetcher struct {
	client *gh.Client
}

// NewGitHubFetcher creates a fetcher. An empty token yields an
// unauthenticated client, good enough for public repositories.
func NewGitHubFetcher(token string) *GitHubFetcher {
	httpClient := http.DefaultClient
	if token != "" {
		httpClient = &http.Client{Transport: &tokenTransport{token: token}}
	}
	return &GitHubFetcher{client: gh.NewClient(httpClient)}
}

// Fetch downloads the suite document at a github:// location.
func (f *GitHubFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	loc, err := ParseGitHubLocation(location)
	if err != nil {
		return nil, err
	}

	var opts *gh.RepositoryContentGetOptions
	if loc.Ref != "" {
		opts = &gh.RepositoryContentGetOptions{Ref: loc.Ref}
	}

	file, _, _, err := f.client.Repositories.GetContents(ctx, loc.Owner, loc.Repo, loc.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if file == nil {
		return nil, fmt.Errorf("fetch %s: not a file", location)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", location, err)
	}
	return []byte(content), nil
}

// tokenTransport adds Bearer token auth to HTTP requests.
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip clones the request before adding the header; transports must not
// modify the caller's request.
func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+t.token)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(authed)
}
