package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stockroom/stockroom/internal/domain"
)

// FileName is the catalog looked up in the working directory when no path is
// given on the command line.
const FileName = ".stockroom.yaml"

// YAMLLoader implements domain.CatalogLoader by reading a YAML catalog.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the catalog at path. An empty path means FileName in the
// current directory. A missing file yields DefaultCatalog.
func (l *YAMLLoader) Load(path string) (domain.CatalogConfig, error) {
	if path == "" {
		path = FileName
	}
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultCatalog(), nil
		}
		return domain.CatalogConfig{}, err
	}

	var cfg domain.CatalogConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.CatalogConfig{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.CatalogConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	if cfg.StoreName == "" {
		cfg.StoreName = domain.DefaultStoreName
	}
	return cfg, nil
}

// Marshal renders cfg as a commented YAML document suitable for `init`.
func Marshal(cfg domain.CatalogConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	header := "# stockroom catalog\n# Products are listed in store order. `active` is optional and overrides\n# the flag derived from quantity.\n\n"
	return append([]byte(header), body...), nil
}
