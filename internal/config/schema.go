// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package config

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaID is the $id stamped on the generated config schema.
const SchemaID = "https://github.com/DougDougDevDev/DougDougEmojiChat/schemas/config.schema.json"

var (
	compiledSchema *jschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// GenerateSchema generates a JSON Schema for the Config struct.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "DougDougEmojiChat Configuration"
	schema.Description = "Schema for the emojichat config.yml file"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Wrap(err)
	}
	return data, nil
}

// ValidateSchema validates raw YAML config data against the generated
// schema.
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return oops.Errorf("config data is empty")
	}

	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return oops.Wrap(err)
	}

	// YAML round-trips through JSON so the validator sees only
	// JSON-compatible types.
	jsonBytes, err := json.Marshal(yamlDoc)
	if err != nil {
		return oops.Wrap(err)
	}
	var doc any
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return oops.Wrap(err)
	}

	sch, err := getCompiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return oops.Wrap(err)
	}
	return nil
}

// getCompiledSchema compiles the generated schema once and caches it.
func getCompiledSchema() (*jschema.Schema, error) {
	compileOnce.Do(func() {
		schemaBytes, err := GenerateSchema()
		if err != nil {
			compileErr = err
			return
		}

		var schemaDoc any
		if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
			compileErr = oops.Wrap(err)
			return
		}

		c := jschema.NewCompiler()
		if err := c.AddResource("config.schema.json", schemaDoc); err != nil {
			compileErr = oops.Wrap(err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = oops.Wrap(compileErr)
		}
	})
	return compiledSchema, compileErr
}
