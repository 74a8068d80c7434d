package jsonstream

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
{
	"a": 1,
	"b": [1, {"e": "decoy"}, 3],
	"c": null,
	"d": {
		"e": "target",
		"e f": {"g": "z"},
		"": {"s": "here"}
	},
	"f": "x"
}
`

func TestFind(t *testing.T) {
	var tests = []struct {
		path     string
		expected any
	}{
		{path: ".d.e", expected: "target"},
		{path: ".f", expected: "x"},
		{path: ".a", expected: float64(1)},
		{path: ".c", expected: nil},
		{path: ".d.e f.g", expected: "z"},
		{path: ".d..s", expected: "here"},
	}

	for _, tt := range tests {
		p, err := ParsePath(tt.path)
		require.NoError(t, err)

		value, err := Find(context.Background(), strings.NewReader(document), p)
		require.NoError(t, err, tt.path)

		assert.Equal(t, tt.expected, value, tt.path)
	}
}

func TestFindMissing(t *testing.T) {
	for _, path := range []string{".z", ".d.x", ".a.b", ".d"} {
		p, err := ParsePath(path)
		require.NoError(t, err)

		_, err = Find(context.Background(), strings.NewReader(document), p)
		require.ErrorIs(t, err, ErrNotFound, path)
	}
}

func TestFindCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Find(ctx, strings.NewReader(document), Path{"f"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath(".dist-tags.latest")
	require.NoError(t, err)
	assert.Equal(t, Path{"dist-tags", "latest"}, p)
	assert.Equal(t, ".dist-tags.latest", p.String())

	assert.Equal(t, `."".s`, Path{"", "s"}.String())

	_, err = ParsePath("tag_name")
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = ParsePath(".tag_name.")
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestString(t *testing.T) {
	s, err := String(context.Background(), strings.NewReader(`{"tag_name": "v1.2.3", "name": "x"}`), ".tag_name")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", s)

	_, err = String(context.Background(), strings.NewReader(document), ".a")
	require.Error(t, err)
}
