package fetch

import (
	"context"
	"sync"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// branchResolver resolves repository default branches through the GitHub API.
// Results are cached per owner/repo for the lifetime of the client.
type branchResolver struct {
	client *github.Client
	mu     sync.Mutex
	cache  map[string]string
}

func newBranchResolver(token string) *branchResolver {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &branchResolver{
		client: github.NewClient(tc),
		cache:  make(map[string]string),
	}
}

// DefaultBranch returns the default branch of owner/repo.
func (r *branchResolver) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	key := owner + "/" + repo

	r.mu.Lock()
	branch, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return branch, nil
	}

	repository, _, err := r.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	branch = repository.GetDefaultBranch()

	r.mu.Lock()
	r.cache[key] = branch
	r.mu.Unlock()
	return branch, nil
}
