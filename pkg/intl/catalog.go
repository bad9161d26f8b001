package intl

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadMessagesFS reads message catalogs from fsys.
//
// File convention:
//
//	{locale}.json                  whole catalog for the locale
//	{locale}/{namespace}.yaml      catalog nested under the namespace key
//	{locale}/{a}/{b}.yml           nested under a.b
//
// JSON, .yaml and .yml files are read; other files are ignored. Catalogs for
// the same locale are deep-merged.
func LoadMessagesFS(fsys fs.FS) (Messages, error) {
	messages := Messages{}

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		return addCatalogFile(messages, filePath, data)
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// WithMessagesFS loads catalogs from fsys into the configuration.
func WithMessagesFS(fsys fs.FS) ConfigOption {
	return func(c *Config) error {
		messages, err := LoadMessagesFS(fsys)
		if err != nil {
			return err
		}
		return WithMessages(messages)(c)
	}
}

func addCatalogFile(messages Messages, filePath string, data []byte) error {
	ext := strings.ToLower(path.Ext(filePath))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil
	}

	parts := strings.Split(strings.TrimSuffix(filePath, path.Ext(filePath)), "/")
	locale := parts[0]
	if locale == "" || locale == "." {
		return fmt.Errorf("%w: cannot derive locale from %q", ErrInvalidFile, filePath)
	}

	var catalog map[string]any
	var err error
	if ext == ".json" {
		err = json.Unmarshal(data, &catalog)
	} else {
		err = yaml.Unmarshal(data, &catalog)
	}
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
	}

	// Nest the catalog under directory and file names below the locale.
	for i := len(parts) - 1; i >= 1; i-- {
		catalog = map[string]any{parts[i]: catalog}
	}

	if messages[locale] == nil {
		messages[locale] = map[string]any{}
	}
	mergeCatalog(messages[locale], catalog)
	return nil
}
