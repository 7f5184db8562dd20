// Package catalog reads item lists from YAML or JSON files, the format the
// game masters keep their equipment sheets in.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
)

// Format selects the decoder for a catalog document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.InvalidArgumentf("unsupported catalog extension %q", filepath.Ext(path)).
			WithMeta("path", path)
	}
}

// Parse decodes a catalog. The document is either a bare list of items or a
// mapping with an "items" list. Entries that are not mappings become empty
// items.
func Parse(data []byte, format Format) ([]inventory.Item, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid yaml catalog")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid json catalog")
		}
	default:
		return nil, errors.InvalidArgumentf("unknown catalog format %q", format)
	}

	list, err := itemList(normalize(doc))
	if err != nil {
		return nil, err
	}

	items := make([]inventory.Item, 0, len(list))
	for _, entry := range list {
		fields, _ := entry.(map[string]any)
		items = append(items, inventory.DecodeItem(fields))
	}
	return items, nil
}

// LoadFile reads and parses a single catalog file.
func LoadFile(path string) ([]inventory.Item, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	items, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", path)
	}
	return items, nil
}

// LoadDir loads every .yaml, .yml and .json file in dir, in file name order.
func LoadDir(dir string) ([]inventory.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := FormatFromPath(entry.Name()); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var items []inventory.Item
	for _, name := range names {
		loaded, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	if items == nil {
		items = []inventory.Item{}
	}
	return items, nil
}

func itemList(doc any) ([]any, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		raw, ok := v["items"]
		if !ok || raw == nil {
			return nil, nil
		}
		list, ok := raw.([]any)
		if !ok {
			return nil, errors.InvalidArgument("catalog items must be a list")
		}
		return list, nil
	default:
		return nil, errors.InvalidArgument("catalog must be a list of items or a mapping with an items list")
	}
}

// normalize turns YAML mappings with non-string keys into string keyed maps
// so every document reaches DecodeItem in the same shape as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	default:
		return v
	}
}
