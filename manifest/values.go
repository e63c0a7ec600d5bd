package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadUserValues loads user-defined metadata from YAML files and merges
// them in order; later files take precedence per top-level key. The result
// feeds the document's user fragment when the values live outside the
// manifest.
func LoadUserValues(paths ...string) (map[string]any, error) {
	merged := make(map[string]any)
	for _, path := range paths {
		values, err := loadValuesFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading user values file %s: %w", path, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	return merged, nil
}

func loadValuesFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values map[string]any
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return values, nil
}
