package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		description   string
		input         string
		expectMain    Attributes
		expectEntries map[string]Attributes
		expectErr     bool
	}{
		{
			description: "main section only",
			input:       "Manifest-Version: 1.0\r\nClass-Path: lib/a.jar lib/b.jar\r\n\r\n",
			expectMain:  Attributes{"manifest-version": "1.0", "class-path": "lib/a.jar lib/b.jar"},
		},
		{
			description: "continuation lines",
			input: "Manifest-Version: 1.0\n" +
				"Class-Path: lib/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
				" aaa.jar lib/b.jar\n",
			expectMain: Attributes{"manifest-version": "1.0",
				"class-path": "lib/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.jar lib/b.jar"},
		},
		{
			description: "entry sections",
			input: "Manifest-Version: 1.0\n\n" +
				"Name: com/foo/Bar.class\nSHA-256-Digest: abc\n\n" +
				"Name: com/foo/Baz.class\nSHA-256-Digest: def\n",
			expectMain: Attributes{"manifest-version": "1.0"},
			expectEntries: map[string]Attributes{
				"com/foo/Bar.class": {"name": "com/foo/Bar.class", "sha-256-digest": "abc"},
				"com/foo/Baz.class": {"name": "com/foo/Baz.class", "sha-256-digest": "def"},
			},
		},
		{
			description: "invalid header",
			input:       "Manifest-Version 1.0\n",
			expectErr:   true,
		},
		{
			description: "dangling continuation",
			input:       " lib/a.jar\n",
			expectErr:   true,
		},
		{
			description: "section without name",
			input:       "Manifest-Version: 1.0\n\nSHA-256-Digest: abc\n",
			expectErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			manifest, err := ParseManifest([]byte(tc.input))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, tc.expectMain, manifest.Main)
			if tc.expectEntries == nil {
				tc.expectEntries = map[string]Attributes{}
			}
			assert.EqualValues(t, tc.expectEntries, manifest.Entries)
		})
	}
}

func TestAttributes_Get(t *testing.T) {
	manifest, err := ParseManifest([]byte("class-path: a.jar\n"))
	if !assert.NoError(t, err) {
		return
	}
	value, ok := manifest.ClassPath()
	assert.True(t, ok)
	assert.EqualValues(t, "a.jar", value)
	_, ok = manifest.Main.Get("Main-Class")
	assert.False(t, ok)
}
