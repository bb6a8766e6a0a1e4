package plugins

import (
	"fmt"
	"path/filepath"

	"github.com/kingrea/sound-archive/internal/catalog"
)

// Discover loads YAML and Go catalogs from dir and rejects specimen ids that
// collide across files or with the reserved set (typically the built-in
// records).
func Discover(dir string, reserved func(id string) bool) ([]SourceFile, error) {
	files, err := loadAllCatalogFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	seen := make(map[string]string)
	for _, file := range files {
		for _, rec := range file.Catalog.Specimens {
			if reserved != nil && reserved(rec.ID) {
				return nil, fmt.Errorf("plugin: %s: %w: %s shadows a built-in specimen", file.Path, catalog.ErrDuplicateID, rec.ID)
			}
			if existing, ok := seen[rec.ID]; ok {
				return nil, fmt.Errorf("plugin: %w: %s (%s and %s)", catalog.ErrDuplicateID, rec.ID, existing, file.Path)
			}
			seen[rec.ID] = file.Path
		}
	}
	return files, nil
}

// Batches flattens discovered files into per-file record batches, ready for
// catalog.NewStore.
func Batches(files []SourceFile) [][]catalog.Specimen {
	if len(files) == 0 {
		return nil
	}
	out := make([][]catalog.Specimen, 0, len(files))
	for _, file := range files {
		out = append(out, file.Catalog.Specimens)
	}
	return out
}

// BuildStore combines the built-in records with everything discovered in dir.
func BuildStore(dir string) (*catalog.Store, []SourceFile, error) {
	builtin := catalog.Builtin()
	ids := make(map[string]struct{}, len(builtin))
	for _, rec := range builtin {
		ids[rec.ID] = struct{}{}
	}
	files, err := Discover(dir, func(id string) bool {
		_, ok := ids[id]
		return ok
	})
	if err != nil {
		return nil, nil, err
	}
	batches := append([][]catalog.Specimen{builtin}, Batches(files)...)
	store, err := catalog.NewStore(batches...)
	if err != nil {
		return nil, nil, fmt.Errorf("plugin: build store: %w", err)
	}
	return store, files, nil
}

// LoadFile parses a single YAML or Go catalog file.
func LoadFile(path string) (SourceFile, error) {
	switch {
	case isYAMLFile(path):
		return LoadCatalogFile(path)
	case filepath.Ext(path) == ".go":
		return loadGoCatalogFile(path)
	}
	return SourceFile{}, fmt.Errorf("plugin: %s is not a .yaml, .yml or .go catalog", path)
}

func loadAllCatalogFiles(dir string) ([]SourceFile, error) {
	yamlFiles, err := LoadCatalogDir(dir)
	if err != nil {
		return nil, err
	}
	goFiles, err := LoadGoCatalogDir(dir)
	if err != nil {
		return nil, err
	}
	return append(yamlFiles, goFiles...), nil
}
