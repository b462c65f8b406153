package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"

	"gopkg.in/yaml.v3"
)

// LoadSchemaVariant reads a YAML schema variant, e.g.
//
//	name: themed-v2
//	include_theme: true
//	clean_completion: true
//	system_prompt: |
//	  You are ...
//
// An empty system_prompt keeps the built-in prompt for the declared shape.
func LoadSchemaVariant(path string) (models.SchemaVariant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SchemaVariant{}, fmt.Errorf("read schema file %s: %w", path, err)
	}

	var variant models.SchemaVariant
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&variant); err != nil && !errors.Is(err, io.EOF) {
		return models.SchemaVariant{}, fmt.Errorf("parse schema file %s: %w", path, err)
	}

	if variant.Name == "" {
		variant.Name = "custom"
	}
	return variant, nil
}
