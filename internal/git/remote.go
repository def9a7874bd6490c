package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeRemoteURL turns a clone URL into the https URL compare links hang off.
// Examples:
//
//	git@github.com:org/repo.git       -> https://github.com/org/repo
//	ssh://git@github.com/org/repo.git -> https://github.com/org/repo
//	https://github.com/org/repo.git   -> https://github.com/org/repo
func NormalizeRemoteURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty remote URL")
	}

	// scp-like syntax: user@host:path
	if !strings.Contains(raw, "://") {
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")
		if colon <= at+1 {
			return "", fmt.Errorf("unrecognized remote URL %q", raw)
		}
		raw = "ssh://" + raw[:colon] + "/" + raw[colon+1:]
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing remote URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("remote URL %q has no host", raw)
	}

	path := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	return "https://" + u.Hostname() + "/" + path, nil
}
