package updater

import (
	"net/http"
	"time"

	"github.com/swiftinit-labs/swiftinit/internal/branding"
)

// Checker queries the release source for versions newer than the running
// binary.
type Checker struct {
	current string
	repo    string
	mirror  string
	client  *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) { ch.client = c }
}

// WithMirror makes release asset URLs point at base instead of GitHub.
func WithMirror(base string) Option {
	return func(ch *Checker) { ch.mirror = base }
}

// New returns a Checker for the given running version.
func New(current string, opts ...Option) *Checker {
	ch := &Checker{
		current: current,
		repo:    branding.GitHubRepo(),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Current returns the version the checker was built with.
func (ch *Checker) Current() string { return ch.current }
