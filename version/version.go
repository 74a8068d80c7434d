// Package version reports which build is running and whether a newer release exists.
package version

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"golang.org/x/mod/semver"

	"github.com/jsandy/cli/jsonstream"
)

const (
	Owner = "jsandy"
	Repo  = "cli"
)

var (
	githubAPIURLPrefix = "https://api.github.com/repos"

	readBuildInfo = debug.ReadBuildInfo
)

func FromBuildInfo() (version string) {
	version = "unavailable"

	info, ok := readBuildInfo()
	if !ok {
		return version
	}

	var revision, ts string

	for i := range info.Settings {
		switch info.Settings[i].Key {
		case "vcs.revision":
			revision = info.Settings[i].Value
		case "vcs.time":
			ts = info.Settings[i].Value
		default:
			continue
		}
	}

	version = info.Main.Version

	switch {
	case revision == "":
		return version
	case ts == "":
		return fmt.Sprintf("%s (revision %s)", version, revision)
	default:
		return fmt.Sprintf("%s (revision %s at %s)", version, revision, ts)
	}
}

// Current is "" for builds without a tagged module version, e.g. "(devel)".
func Current() string {
	info, ok := readBuildInfo()
	if !ok || !semver.IsValid(info.Main.Version) {
		return ""
	}

	return info.Main.Version
}

func LatestRelease(ctx context.Context, owner, repo string) (tag string, err error) {
	url := fmt.Sprintf("%s/%s/%s/releases/latest", githubAPIURLPrefix, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to prepare GET request to endpoint %s: %w", url, err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to GET from endpoint %q: %w", url, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if rc := resp.StatusCode; rc != http.StatusOK {
		return "", fmt.Errorf("failed to GET from endpoint %q, status code %d", url, rc)
	}

	tag, err = jsonstream.String(ctx, resp.Body, ".tag_name")
	if err != nil {
		return "", fmt.Errorf("failed to read the release tag of %s/%s: %w", owner, repo, err)
	}

	return tag, nil
}

// Newer reports whether latest is a higher semantic version than current.
// Either side may omit the leading "v".
func Newer(current, latest string) bool {
	current, latest = canonical(current), canonical(latest)

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}

	return semver.Compare(latest, current) > 0
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}

	return v
}

// CheckForUpdate returns the newer release tag, or "" when the running build is current or untagged.
func CheckForUpdate(ctx context.Context) (string, error) {
	current := Current()
	if current == "" {
		return "", nil
	}

	latest, err := LatestRelease(ctx, Owner, Repo)
	if err != nil {
		return "", err
	}

	if !Newer(current, latest) {
		return "", nil
	}

	return latest, nil
}
