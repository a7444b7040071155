// Package parser loads technology catalogs and derives the compatibility
// index. It handles normalization of both compatibleWith shapes, structural
// validation, and the symmetric closure of declared edges.
package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/stackscope/core/internal/models"
)

var validate = validator.New()

// ParseCatalog decodes and structurally validates a JSON catalog document.
// A malformed document is the only fatal condition in the whole engine;
// everything downstream degrades to empty results instead of failing.
func ParseCatalog(data []byte) (*models.Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty catalog data")
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	if err := validate.Struct(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &catalog, nil
}

// ParseCatalogYAML decodes a YAML catalog document. The document is
// normalized through the JSON path so the duck-typed compatibleWith handling
// lives in exactly one place.
func ParseCatalogYAML(data []byte) (*models.Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty catalog data")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog yaml: %w", err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize catalog yaml: %w", err)
	}

	return ParseCatalog(jsonData)
}

// LoadCatalog reads a catalog file, dispatching on extension (.yaml/.yml vs
// JSON).
func LoadCatalog(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseCatalogYAML(data)
	default:
		return ParseCatalog(data)
	}
}
