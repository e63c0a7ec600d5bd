package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for manifest overrides.
const envPrefix = "CONTRACT"

// DefaultFile is the manifest filename looked up when no explicit path is
// given.
const DefaultFile = "contract.yaml"

// Loader reads and merges a project manifest from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a manifest loader. Environment variables with the
// CONTRACT_ prefix override file values (CONTRACT_CONTRACT_NAME overrides
// contract.name).
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads the manifest at path. If path is empty, DefaultFile in the
// current directory is used. A missing manifest file is an error: unlike
// tool configuration, the manifest is the sole source of the required
// contract fields.
func (l *Loader) Load(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := l.v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest %s: %w", path, err)
	}
	return &m, nil
}

// Load is a convenience wrapper around NewLoader().Load.
func Load(path string) (*Manifest, error) {
	return NewLoader().Load(path)
}
