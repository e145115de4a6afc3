package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/swiftinit-labs/swiftinit/internal/branding"
)

const apiBase = "https://api.github.com"

// Release is the subset of the GitHub release payload the checker uses.
type Release struct {
	TagName     string    `json:"tag_name"`
	PageURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []Asset   `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
}

// Latest fetches the most recent release.
func (ch *Checker) Latest() (*Release, error) {
	return ch.fetch(fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, ch.repo))
}

// ByTag fetches the release for a specific tag, adding the "v" prefix when
// the caller passed a bare version number.
func (ch *Checker) ByTag(tag string) (*Release, error) {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	return ch.fetch(fmt.Sprintf("%s/repos/%s/releases/tags/%s", apiBase, ch.repo, tag))
}

func (ch *Checker) fetch(url string) (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")
	// A token raises the API rate limit for CI and heavy users.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := ch.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("release not found at %s", url)
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded (set GITHUB_TOKEN to raise it)")
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decoding release: %w", err)
	}

	if ch.mirror != "" {
		base := strings.TrimRight(ch.mirror, "/")
		for i := range rel.Assets {
			rel.Assets[i].DownloadURL = base + "/" + rel.Assets[i].Name
		}
	}
	return &rel, nil
}
