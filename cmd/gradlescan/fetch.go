package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flutterscan/gradlescan/pkg/fetch"
	"github.com/flutterscan/gradlescan/pkg/index"
)

var (
	fetchBuildDir  string
	fetchSourceURL string
	fetchForce     bool
	fetchToken     string
	fetchOverrides string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download build.gradle files for listed Flutter apps",
	Long: `Download the index of open-source Flutter apps, extract the repository links
it declares, and cache each repository's android/app/build.gradle locally.
Already-cached files are kept unless --force.
Use --token or GITHUB_TOKEN to resolve default branches through the GitHub API;
without a token the branches main, master, and develop are tried in order.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchBuildDir, "build-dir", "build", "Local cache directory")
	fetchCmd.Flags().StringVar(&fetchSourceURL, "source-url", fetch.DefaultSourceURL, "Index document URL")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "Redownload files that are already cached")
	fetchCmd.Flags().StringVar(&fetchToken, "token", "", "GitHub API token (or GITHUB_TOKEN env; optional)")
	fetchCmd.Flags().StringVar(&fetchOverrides, "overrides", "", "Path to a custom monorepo overrides file")
}

func runFetch(cmd *cobra.Command, args []string) error {
	token := fetchToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	overrides, err := loadOverrides(fetchOverrides)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}

	client := fetch.NewClient(fetch.Config{
		BuildDir:  fetchBuildDir,
		SourceURL: fetchSourceURL,
		Force:     fetchForce,
		Token:     token,
		Overrides: overrides,
	})

	ctx := cmd.Context()
	indexPath, err := client.DownloadIndex(ctx)
	if err != nil {
		return fmt.Errorf("downloading index: %w", err)
	}

	source, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("reading index: %w", err)
	}

	links, err := index.ExtractLinks(source)
	if err != nil {
		return fmt.Errorf("parsing index: %w", err)
	}

	fetched := 0
	missing := 0
	skipped := 0
	for _, link := range links {
		owner, repo, err := fetch.ParseRepoLink(link.Dest)
		if err != nil {
			skipped++
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", link.Dest, err)
			}
			continue
		}

		path, found, err := client.FetchBuildGradle(ctx, owner, repo)
		if err != nil {
			// Per-repository failures never abort the batch.
			missing++
			fmt.Fprintf(cmd.ErrOrStderr(), "fetching %s/%s: %v\n", owner, repo, err)
			continue
		}
		if !found {
			missing++
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "build.gradle not found for %s/%s\n", owner, repo)
			}
			continue
		}

		fetched++
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "cached %s\n", path)
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d files into %s (%d missing, %d skipped)\n",
			fetched, fetchBuildDir, missing, skipped)
	}
	return nil
}

func loadOverrides(path string) (fetch.Overrides, error) {
	if path != "" {
		return fetch.LoadOverridesFile(path)
	}
	return fetch.LoadBuiltinOverrides()
}
