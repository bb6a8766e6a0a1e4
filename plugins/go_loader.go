package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"gopkg.in/yaml.v3"
)

const goCatalogFuncName = "Specimens"

// LoadGoCatalogDir evaluates every .go file in dir and collects the
// specimens each one returns from Specimens().
func LoadGoCatalogDir(dir string) ([]SourceFile, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin: read %s: %w", trimmed, err)
	}
	var files []SourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".go" {
			continue
		}
		file, err := loadGoCatalogFile(filepath.Join(trimmed, entry.Name()))
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

func loadGoCatalogFile(path string) (SourceFile, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return SourceFile{}, fmt.Errorf("plugin: %s is empty", path)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return SourceFile{}, fmt.Errorf("plugin: load stdlib symbols: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return SourceFile{}, fmt.Errorf("plugin: interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(goCatalogFuncName)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: %s must define %s() ([]map[string]any, error): %w", path, goCatalogFuncName, err)
	}
	raw, callErr := invokeCatalogFunc(fnValue)
	if callErr != nil {
		return SourceFile{}, fmt.Errorf("plugin: %s: %w", path, callErr)
	}
	payload, err := yaml.Marshal(map[string]any{"specimens": raw})
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: %s: encode specimens: %w", path, err)
	}
	file, err := ParseCatalogYAML(payload)
	if err != nil {
		return SourceFile{}, fmt.Errorf("plugin: %s: %w", path, err)
	}
	if file.Collection == "" {
		file.Collection = strings.TrimSuffix(filepath.Base(path), ".go")
	}
	return SourceFile{Catalog: file, Path: filepath.Clean(path)}, nil
}

func invokeCatalogFunc(value reflect.Value) ([]map[string]any, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("missing %s function", goCatalogFuncName)
	}
	fn := value
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is not a function", goCatalogFuncName)
	}
	if fn.Type().NumIn() != 0 {
		return nil, fmt.Errorf("%s must not take arguments", goCatalogFuncName)
	}
	results := fn.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, fmt.Errorf("%s must return ([]map[string]any[, error])", goCatalogFuncName)
	}
	recsVal := results[0]
	if len(results) == 2 {
		if !results[1].IsNil() {
			if e, ok := results[1].Interface().(error); ok && e != nil {
				return nil, e
			}
			return nil, fmt.Errorf("%s returned non-error second value", goCatalogFuncName)
		}
	}
	recs, ok := recsVal.Interface().([]map[string]any)
	if ok {
		return recs, nil
	}
	if recsVal.Kind() == reflect.Slice {
		result := make([]map[string]any, recsVal.Len())
		for i := 0; i < recsVal.Len(); i++ {
			entry := recsVal.Index(i).Interface()
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not map[string]any", goCatalogFuncName, i)
			}
			result[i] = m
		}
		return result, nil
	}
	return nil, fmt.Errorf("%s must return []map[string]any", goCatalogFuncName)
}
