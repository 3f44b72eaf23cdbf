package levels

import (
	_ "embed"
)

//go:embed levels.yaml
var defaultSet []byte

// Default parses the level set compiled into the binary.
func Default() ([]Level, error) {
	return Parse(defaultSet)
}
