package archive_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/reachability/archive"
	"github.com/viant/reachability/archive/jartest"
)

func TestArchive_PomInfos(t *testing.T) {
	tests := []struct {
		description string
		entries     map[string]string
		expect      []*archive.PomInfo
		expectErr   bool
	}{
		{
			description: "pom properties",
			entries: map[string]string{
				"META-INF/maven/io.netty/netty-common/pom.properties": "#Created by Maven\ngroupId=io.netty\nartifactId=netty-common\nversion=4.1.100.Final\n",
			},
			expect: []*archive.PomInfo{{GroupID: "io.netty", ArtifactID: "netty-common", Version: "4.1.100.Final"}},
		},
		{
			description: "coordinates from entry path",
			entries: map[string]string{
				"META-INF/maven/com.example/app/pom.properties": "version=1.0\n",
			},
			expect: []*archive.PomInfo{{GroupID: "com.example", ArtifactID: "app", Version: "1.0"}},
		},
		{
			description: "no maven metadata",
			entries:     map[string]string{"com/example/App.class": "cafebabe"},
		},
		{
			description: "malformed pom properties",
			entries: map[string]string{
				"META-INF/maven/com.example/app/pom.properties": "version=\\uZZZZ\n",
			},
			expectErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			path := jartest.Write(t, filepath.Join(t.TempDir(), "app.jar"), &jartest.Jar{Entries: tc.entries})
			jar, err := archive.New(nil).Open(context.Background(), path)
			if !assert.NoError(t, err) {
				return
			}
			defer jar.Close()
			infos, err := jar.PomInfos()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expect, infos)
		})
	}
	assert.EqualValues(t, "io.netty:netty-common:4.1", (&archive.PomInfo{GroupID: "io.netty", ArtifactID: "netty-common", Version: "4.1"}).String())
	assert.EqualValues(t, "io.netty:netty-common", (&archive.PomInfo{GroupID: "io.netty", ArtifactID: "netty-common"}).String())
}
