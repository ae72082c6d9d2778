// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/antoniszymanski/avrots-go/cmd/avrots/internal"
	"github.com/hashicorp/go-set/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type Config struct {
	Schema string `json:"$schema,omitzero"`
	// Format runs the generated TypeScript through sanefmt.
	Format bool `json:"format"`
	// DocWidth is the column budget for wrapped doc comments.
	DocWidth int `json:"doc_width" jsonschema:"default=80,minimum=20"`
	// OutputPath is the directory the .ts files are written to.
	OutputPath string `json:"output_path" jsonschema:"required,minLength=1"`
	// Schemas lists the Avro schema files to translate, one module each.
	Schemas internal.Array[string] `json:"schemas" jsonschema:"required,minItems=1"`
	// TypeMappings overrides primitive renderings, e.g. {"bytes": "Uint8Array"}.
	TypeMappings internal.Object[string, string] `json:"type_mappings"`
	// Names restricts generation to schemas with these root names; empty means all.
	Names *set.Set[string] `json:"names,omitempty"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type RawConfig Config
	return json.Unmarshal(data, (*RawConfig)(c))
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
