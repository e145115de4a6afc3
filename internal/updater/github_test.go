package updater

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const releaseJSON = `{
  "tag_name": "v1.2.0",
  "html_url": "https://github.com/swiftinit-labs/swiftinit/releases/tag/v1.2.0",
  "assets": [
    {"name": "swiftinit_linux_amd64.tar.gz", "browser_download_url": "https://github.com/swiftinit-labs/swiftinit/releases/download/v1.2.0/swiftinit_linux_amd64.tar.gz", "size": 1024}
  ]
}`

func clientServing(t *testing.T, status int, body string, gotURL *string) *http.Client {
	t.Helper()
	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if gotURL != nil {
				*gotURL = req.URL.String()
			}
			return response(status, body), nil
		}),
	}
}

func TestLatestRelease(t *testing.T) {
	var gotURL string
	ch := New("1.0.0", WithHTTPClient(clientServing(t, http.StatusOK, releaseJSON, &gotURL)))

	rel, err := ch.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !strings.HasSuffix(gotURL, "/releases/latest") {
		t.Errorf("request URL = %q, want /releases/latest suffix", gotURL)
	}
	if rel.TagName != "v1.2.0" {
		t.Errorf("TagName = %q, want %q", rel.TagName, "v1.2.0")
	}
	if rel.PageURL == "" {
		t.Error("PageURL should be populated")
	}
	if len(rel.Assets) != 1 {
		t.Fatalf("len(Assets) = %d, want 1", len(rel.Assets))
	}
}

func TestByTagAddsVersionPrefix(t *testing.T) {
	var gotURL string
	ch := New("1.0.0", WithHTTPClient(clientServing(t, http.StatusOK, releaseJSON, &gotURL)))

	if _, err := ch.ByTag("1.2.0"); err != nil {
		t.Fatalf("ByTag: %v", err)
	}
	if !strings.HasSuffix(gotURL, "/releases/tags/v1.2.0") {
		t.Errorf("request URL = %q, want /releases/tags/v1.2.0 suffix", gotURL)
	}
}

func TestFetchReportsMissingRelease(t *testing.T) {
	ch := New("1.0.0", WithHTTPClient(clientServing(t, http.StatusNotFound, "", nil)))

	_, err := ch.Latest()
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "release not found") {
		t.Errorf("error = %v, want release not found", err)
	}
}

func TestMirrorRewritesAssetURLs(t *testing.T) {
	ch := New("1.0.0",
		WithHTTPClient(clientServing(t, http.StatusOK, releaseJSON, nil)),
		WithMirror("https://mirror.example.com/swiftinit/"))

	rel, err := ch.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	want := "https://mirror.example.com/swiftinit/swiftinit_linux_amd64.tar.gz"
	if rel.Assets[0].DownloadURL != want {
		t.Errorf("DownloadURL = %q, want %q", rel.Assets[0].DownloadURL, want)
	}
}
