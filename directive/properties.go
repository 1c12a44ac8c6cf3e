package directive

import (
	"fmt"

	"github.com/magiconair/properties"
)

var loader = &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}

// LoadArgs returns Args property of a native-image properties descriptor.
// Values are taken verbatim, ${...} references are not expanded.
func LoadArgs(data []byte) (string, bool, error) {
	props, err := loader.LoadBytes(data)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse properties: %w", err)
	}
	args, ok := props.Get(ArgsProperty)
	return args, ok, nil
}
