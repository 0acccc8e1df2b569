// Package fetch downloads the Flutter app index and per-repository
// build.gradle files into a local cache directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultSourceURL is the index of open-source Flutter apps.
const DefaultSourceURL = "https://raw.githubusercontent.com/tortuvshin/open-source-flutter-apps/master/README.md"

// DefaultRawBaseURL serves raw file content for GitHub repositories.
const DefaultRawBaseURL = "https://raw.githubusercontent.com"

// branchFallbacks are tried in order when the default branch is unknown.
var branchFallbacks = []string{"main", "master", "develop"}

// Config for the fetch client.
type Config struct {
	// BuildDir is the local cache root (default "build"). The index lands at
	// <BuildDir>/source_readme.md, files at <BuildDir>/files/.
	BuildDir string

	// SourceURL overrides the index document URL.
	SourceURL string

	// RawBaseURL overrides the raw content host. Used by tests.
	RawBaseURL string

	// Force redownloads files that are already cached.
	Force bool

	// Token is an optional GitHub API token. When set, each repository's
	// default branch is resolved through the API and tried first.
	Token string

	// Overrides is the monorepo subdirectory table.
	Overrides Overrides
}

// Client downloads files over HTTPS with bounded retries.
type Client struct {
	config   Config
	http     *retryablehttp.Client
	branches *branchResolver
}

// NewClient creates a fetch client.
func NewClient(cfg Config) *Client {
	if cfg.BuildDir == "" {
		cfg.BuildDir = "build"
	}
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.RawBaseURL == "" {
		cfg.RawBaseURL = DefaultRawBaseURL
	}

	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.Logger = nil

	c := &Client{config: cfg, http: hc}
	if cfg.Token != "" {
		c.branches = newBranchResolver(cfg.Token)
	}
	return c
}

// DownloadIndex fetches the index document into the cache and returns its
// local path.
func (c *Client) DownloadIndex(ctx context.Context) (string, error) {
	path := filepath.Join(c.config.BuildDir, "source_readme.md")
	ok, err := c.downloadFile(ctx, c.config.SourceURL, path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("index document unavailable: %s", c.config.SourceURL)
	}
	return path, nil
}

// FetchBuildGradle downloads android/app/build.gradle for owner/repo into the
// cache, trying candidate branches in order. Returns the cached path and
// whether the file was found on any branch. A missing file is not an error:
// the repository is simply excluded from the scan set.
func (c *Client) FetchBuildGradle(ctx context.Context, owner, repo string) (string, bool, error) {
	subdir := c.config.Overrides.Path(owner, repo)
	if subdir != "" {
		subdir += "/"
	}

	path := filepath.Join(c.config.BuildDir, "files", fmt.Sprintf("%s_%s.build.gradle", owner, repo))

	for _, branch := range c.candidateBranches(ctx, owner, repo) {
		url := fmt.Sprintf("%s/%s/%s/%s/%sandroid/app/build.gradle",
			c.config.RawBaseURL, owner, repo, branch, subdir)
		ok, err := c.downloadFile(ctx, url, path)
		if err != nil {
			return "", false, err
		}
		if ok {
			return path, true, nil
		}
	}
	return "", false, nil
}

// candidateBranches returns the branches to try for owner/repo. With an API
// token the resolved default branch goes first; the static fallbacks cover
// repositories the API could not resolve.
func (c *Client) candidateBranches(ctx context.Context, owner, repo string) []string {
	if c.branches == nil {
		return branchFallbacks
	}
	branch, err := c.branches.DefaultBranch(ctx, owner, repo)
	if err != nil || branch == "" {
		return branchFallbacks
	}
	out := []string{branch}
	for _, b := range branchFallbacks {
		if b != branch {
			out = append(out, b)
		}
	}
	return out
}

// downloadFile GETs url into path. Returns true when the file is already
// cached (unless Force) or was downloaded; false without error when the
// server answered with a non-2xx status.
func (c *Client) downloadFile(ctx context.Context, url, path string) (bool, error) {
	if !c.config.Force {
		if _, err := os.Stat(path); err == nil {
			return true, nil
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return false, err
	}
	return true, f.Close()
}

// ParseRepoLink extracts the owner and repository name from a link like
// https://github.com/owner/repo or https://github.com/owner/repo/tree/main.
func ParseRepoLink(link string) (owner, repo string, err error) {
	parts := strings.SplitN(link, "/", 6)
	if len(parts) < 5 || parts[2] != "github.com" || parts[3] == "" || parts[4] == "" {
		return "", "", fmt.Errorf("not a repository link: %s", link)
	}
	return parts[3], parts[4], nil
}
