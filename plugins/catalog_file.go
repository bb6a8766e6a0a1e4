package plugins

import (
	"fmt"

	"github.com/kingrea/sound-archive/internal/catalog"
)

// CatalogFile is the on-disk schema for supplemental specimen collections
// under <home>/catalog/*.yaml.
type CatalogFile struct {
	Collection string             `json:"collection,omitempty" yaml:"collection,omitempty"`
	Specimens  []catalog.Specimen `json:"specimens" yaml:"specimens"`
}

// Normalized returns a copy with every specimen trimmed and canonicalized.
func (f CatalogFile) Normalized() CatalogFile {
	clone := CatalogFile{Collection: f.Collection}
	if len(f.Specimens) > 0 {
		clone.Specimens = make([]catalog.Specimen, len(f.Specimens))
		for i, rec := range f.Specimens {
			clone.Specimens[i] = rec.Normalized()
		}
	}
	return clone
}

// Validate checks each specimen and rejects ids repeated inside the file.
func (f CatalogFile) Validate() error {
	normalized := f.Normalized()
	if len(normalized.Specimens) == 0 {
		return fmt.Errorf("plugin: at least one specimen is required")
	}
	seen := make(map[string]struct{}, len(normalized.Specimens))
	for idx, rec := range normalized.Specimens {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("plugin: specimens[%d]: %w", idx, err)
		}
		if _, exists := seen[rec.ID]; exists {
			return fmt.Errorf("plugin: specimens[%d]: %w: %s", idx, catalog.ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}
