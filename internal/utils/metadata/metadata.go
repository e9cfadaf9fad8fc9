package metadata

import (
	"fmt"
	"regexp"
	"strings"
)

var keyRegexp = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// ParseSpecs parses KEY=VALUE box metadata specs, later entries override earlier ones.
func ParseSpecs(specs []string) (map[string]any, error) {
	md := make(map[string]any, len(specs))

	for _, spec := range specs {
		if spec == "" {
			return nil, fmt.Errorf("metadata spec cannot be empty")
		}

		key, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("metadata spec %q must be KEY=VALUE", spec)
		}

		if !keyRegexp.MatchString(key) {
			return nil, fmt.Errorf("invalid metadata key %q", key)
		}

		md[key] = value
	}

	return md, nil
}

// Merge returns a new map with override values on top of base.
// It returns nil when both are empty so unset metadata is not sent.
func Merge(base map[string]any, override map[string]any) map[string]any {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}

	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}

	return merged
}
