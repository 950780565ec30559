package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/findpopup/config.schema.json"

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "findpopup configuration"
	schema.Description = "Configuration schema for the findpopup overlay"
	return schema
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to the config file and
// returns its path.
func (m *Manager) WriteSchemaFile() (string, error) {
	data, err := SchemaJSON()
	if err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
