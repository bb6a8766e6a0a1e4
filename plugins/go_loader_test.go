package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goCatalogSource = `package main

import "fmt"

func Specimens() ([]map[string]any, error) {
	var out []map[string]any
	for i, hour := range []string{"Morning", "Night"} {
		out = append(out, map[string]any{
			"id":          fmt.Sprintf("GEN-%03d", i+1),
			"title":       "Generated",
			"title_en":    "Generated Loop " + hour,
			"category":    "Industrial",
			"district":    "Fangshan",
			"duration":    "00:45",
			"era":         "Future",
			"time_of_day": hour,
			"freq":        []int{5, 15, 25, 35, 45, 55, 65, 75},
		})
	}
	return out, nil
}`

func TestLoadGoCatalogDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "generated.go"), []byte(goCatalogSource), 0644); err != nil {
		t.Fatalf("write plugin: %v", err)
	}
	files, err := LoadGoCatalogDir(dir)
	if err != nil {
		t.Fatalf("load go catalogs: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 catalog, got %d", len(files))
	}
	recs := files[0].Catalog.Specimens
	if len(recs) != 2 || recs[0].ID != "GEN-001" || recs[1].TimeOfDay != "Night" {
		t.Fatalf("unexpected specimens: %+v", recs)
	}
	if files[0].Catalog.Collection != "generated" {
		t.Fatalf("collection should default to file name, got %q", files[0].Catalog.Collection)
	}
}

func TestLoadGoCatalogDirMissingFunc(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write broken plugin: %v", err)
	}
	if _, err := LoadGoCatalogDir(dir); err == nil {
		t.Fatalf("expected error for missing Specimens function")
	}
}

func TestLoadGoCatalogDirRejectsInvalidEnum(t *testing.T) {
	dir := t.TempDir()
	src := strings.Replace(goCatalogSource, `"Fangshan"`, `"Gotham"`, 1)
	if err := os.WriteFile(filepath.Join(dir, "bad.go"), []byte(src), 0644); err != nil {
		t.Fatalf("write plugin: %v", err)
	}
	_, err := LoadGoCatalogDir(dir)
	if err == nil || !strings.Contains(err.Error(), "Gotham") {
		t.Fatalf("expected unknown district error, got %v", err)
	}
}
