package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsNewer reports whether candidate is strictly newer than current under
// semver ordering. A leading "v" on either side is tolerated.
func IsNewer(candidate, current string) (bool, error) {
	cand, err := parseLoose(candidate)
	if err != nil {
		return false, fmt.Errorf("parsing candidate version %q: %w", candidate, err)
	}
	cur, err := parseLoose(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	return cand.GreaterThan(cur), nil
}

func parseLoose(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
