package archive

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

const (
	mavenRegion = "META-INF/maven/"
	pomName     = "pom.properties"
)

// PomInfo represents Maven coordinates packaged with an archive
type PomInfo struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version,omitempty"`
}

// String returns groupId:artifactId:version
func (p *PomInfo) String() string {
	if p.Version == "" {
		return p.GroupID + ":" + p.ArtifactID
	}
	return p.GroupID + ":" + p.ArtifactID + ":" + p.Version
}

// PomInfos returns coordinates from META-INF/maven/<group>/<artifact>/pom.properties entries
func (a *Archive) PomInfos() ([]*PomInfo, error) {
	var result []*PomInfo
	for _, name := range a.Entries() {
		if !strings.HasPrefix(name, mavenRegion) || !strings.HasSuffix(name, "/"+pomName) {
			continue
		}
		data, err := a.ReadEntry(name)
		if err != nil {
			return nil, err
		}
		props, err := properties.Load(data, properties.ISO_8859_1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		info := &PomInfo{
			GroupID:    props.GetString("groupId", ""),
			ArtifactID: props.GetString("artifactId", ""),
			Version:    props.GetString("version", ""),
		}
		if info.GroupID == "" || info.ArtifactID == "" {
			parts := strings.Split(strings.TrimPrefix(name, mavenRegion), "/")
			if len(parts) == 3 {
				if info.GroupID == "" {
					info.GroupID = parts[0]
				}
				if info.ArtifactID == "" {
					info.ArtifactID = parts[1]
				}
			}
		}
		result = append(result, info)
	}
	return result, nil
}
