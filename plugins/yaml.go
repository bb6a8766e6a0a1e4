package plugins

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceFile pairs a parsed catalog with its on-disk source.
type SourceFile struct {
	Catalog CatalogFile
	Path    string
}

// ParseCatalogYAML decodes and validates a single catalog payload.
func ParseCatalogYAML(data []byte) (CatalogFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return CatalogFile{}, fmt.Errorf("plugin: catalog payload is empty")
	}
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return CatalogFile{}, fmt.Errorf("plugin: decode catalog: %w", err)
	}
	if err := file.Validate(); err != nil {
		return CatalogFile{}, err
	}
	return file.Normalized(), nil
}

// LoadCatalogFile reads a YAML file from disk and returns the parsed catalog.
func LoadCatalogFile(path string) (SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return SourceFile{}, fmt.Errorf("plugin: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	file, err := ParseCatalogYAML(data)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: %s: %w", path, err)
	}
	return SourceFile{Catalog: file, Path: filepath.Clean(path)}, nil
}

// LoadCatalogDir scans a directory for *.yaml catalogs and returns them
// sorted by path. Missing directories mean "no plugins".
func LoadCatalogDir(dir string) ([]SourceFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin: read %s: %w", trimmed, err)
	}
	var files []SourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) {
			continue
		}
		file, err := LoadCatalogFile(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return nil, nil
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
