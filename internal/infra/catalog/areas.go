package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"studio-search/internal/domain/studio"

	"gopkg.in/yaml.v3"
)

//go:embed areas.yaml
var defaultAreas []byte

type areaFile struct {
	Areas []string `yaml:"areas"`
	Other string   `yaml:"other"`
}

// LoadAreaDirectory reads the area order from path, or the built-in list when path is empty.
func LoadAreaDirectory(path string) (*studio.AreaDirectory, error) {
	data := defaultAreas
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read area file: %w", err)
		}
		data = b
	}

	var f areaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse area file: %w", err)
	}
	return studio.NewAreaDirectory(f.Areas, f.Other), nil
}
