package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBuildInfo(t *testing.T, version string, settings ...debug.BuildSetting) {
	t.Helper()

	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Path: "github.com/jsandy/cli", Version: version}, Settings: settings}, true
	}

	t.Cleanup(func() { readBuildInfo = original })
}

func fakeGitHub(t *testing.T, status int, body string) *string {
	t.Helper()

	var path string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	original := githubAPIURLPrefix
	githubAPIURLPrefix = ts.URL

	t.Cleanup(func() {
		githubAPIURLPrefix = original
		ts.Close()
	})

	return &path
}

func TestFromBuildInfo(t *testing.T) {
	fakeBuildInfo(t, "v0.3.0",
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.time", Value: "2026-10-01T10:00:00Z"},
	)

	assert.Equal(t, "v0.3.0 (revision abc123 at 2026-10-01T10:00:00Z)", FromBuildInfo())
}

func TestCurrent(t *testing.T) {
	fakeBuildInfo(t, "(devel)")
	assert.Equal(t, "", Current())

	fakeBuildInfo(t, "v1.0.2")
	assert.Equal(t, "v1.0.2", Current())
}

func TestNewer(t *testing.T) {
	assert.True(t, Newer("v1.0.0", "v1.1.0"))
	assert.True(t, Newer("1.0.0", "v1.0.1"))
	assert.False(t, Newer("v1.1.0", "v1.1.0"))
	assert.False(t, Newer("v2.0.0", "1.9.9"))
	assert.False(t, Newer("", "v1.0.0"))
	assert.False(t, Newer("v1.0.0", "nightly"))
}

func TestLatestRelease(t *testing.T) {
	path := fakeGitHub(t, http.StatusOK, `{"url": "x", "assets": [{"name": "a"}], "tag_name": "v1.4.0"}`)

	tag, err := LatestRelease(context.Background(), "jsandy", "cli")
	require.NoError(t, err)

	assert.Equal(t, "v1.4.0", tag)
	assert.Equal(t, "/jsandy/cli/releases/latest", *path)
}

func TestLatestReleaseStatus(t *testing.T) {
	_ = fakeGitHub(t, http.StatusNotFound, `{"message": "Not Found"}`)

	_, err := LatestRelease(context.Background(), "jsandy", "cli")
	require.Error(t, err)
}

func TestCheckForUpdate(t *testing.T) {
	_ = fakeGitHub(t, http.StatusOK, `{"tag_name": "v1.4.0"}`)

	fakeBuildInfo(t, "v1.3.9")

	tag, err := CheckForUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", tag)

	fakeBuildInfo(t, "v1.4.0")

	tag, err = CheckForUpdate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tag)
}
