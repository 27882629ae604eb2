package seed

import (
	_ "embed"
	"fmt"
	"os"

	"local-events/internal/model"
	"local-events/internal/validation"
	apperrors "local-events/pkg/app_errors"

	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var defaultCatalog []byte

type catalog struct {
	Events []model.Event `yaml:"events"`
}

// Default returns the embedded mock catalog.
func Default() ([]model.Event, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file; an empty path yields the embedded one.
func Load(path string) ([]model.Event, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML catalog and checks every entry the same way submitted
// events are checked.
func Parse(b []byte) ([]model.Event, error) {
	var c catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	v := validation.New()
	seen := make(map[string]struct{}, len(c.Events))
	for i, e := range c.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("seed event %d: %w", i, apperrors.ErrEmptyID)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("seed event %q: %w", e.ID, apperrors.ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}
		if err := v.ValidateDraft(e.Draft()); err != nil {
			return nil, fmt.Errorf("seed event %q: %w", e.ID, err)
		}
	}
	return c.Events, nil
}
