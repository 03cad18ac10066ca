package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListCategories returns the sorted, deduplicated category directories for
// a component type, or across all types when componentType is empty.
func (w *Writer) ListCategories(componentType string) ([]string, error) {
	types := Types()
	if componentType != "" {
		if err := CheckType(componentType); err != nil {
			return nil, err
		}
		types = []string{componentType}
	}

	seen := make(map[string]bool)
	for _, t := range types {
		dir := filepath.Join(w.baseDir, t)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				seen[entry.Name()] = true
			}
		}
	}

	categories := make([]string, 0, len(seen))
	for name := range seen {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories, nil
}
