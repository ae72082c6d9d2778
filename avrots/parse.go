// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ParseSchema parses Avro schema JSON into the tagged schema model.
// Comment stripping, if wanted, is the caller's job.
func ParseSchema(data []byte) (Schema, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return parseNode(raw)
}

func parseNode(raw json.RawMessage) (Schema, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, errors.New("missing schema node")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return Primitive(s), nil
	case '[':
		var members []json.RawMessage
		if err := json.Unmarshal(data, &members); err != nil {
			return nil, err
		}
		union := make(Union, 0, len(members))
		for _, member := range members {
			node, err := parseNode(member)
			if err != nil {
				return nil, err
			}
			union = append(union, node)
		}
		return union, nil
	case '{':
		return parseObject(data)
	default:
		return nil, fmt.Errorf("invalid schema node: %s", data)
	}
}

type rawObject struct {
	Type        json.RawMessage `json:"type"`
	LogicalType string          `json:"logicalType"`
	Name        string          `json:"name"`
	Doc         string          `json:"doc"`
	Fields      []rawField      `json:"fields"`
	Symbols     []string        `json:"symbols"`
	Items       json.RawMessage `json:"items"`
	Values      json.RawMessage `json:"values"`
	Precision   int             `json:"precision"`
	Scale       int             `json:"scale"`
}

type rawField struct {
	Name    string          `json:"name"`
	Doc     string          `json:"doc"`
	Type    json.RawMessage `json:"type"`
	Default json.RawMessage `json:"default"`
}

func parseObject(data []byte) (Schema, error) {
	var obj rawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	if obj.LogicalType == "decimal" {
		return &Decimal{Precision: obj.Precision, Scale: obj.Scale}, nil
	}

	var typ string
	if len(obj.Type) > 0 && obj.Type[0] == '"' {
		if err := json.Unmarshal(obj.Type, &typ); err != nil {
			return nil, err
		}
	}

	switch typ {
	case "record", "error":
		if obj.Name == "" {
			return nil, errors.New("record schema has no name")
		}
		rec := &Record{Name: obj.Name, Doc: obj.Doc}
		for _, rf := range obj.Fields {
			ft, err := parseNode(rf.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s of %s: %w", rf.Name, obj.Name, err)
			}
			rec.Fields = append(rec.Fields, Field{
				Name:       rf.Name,
				Doc:        rf.Doc,
				Type:       ft,
				Default:    rf.Default,
				HasDefault: rf.Default != nil,
			})
		}
		return rec, nil
	case "enum":
		if obj.Name == "" {
			return nil, errors.New("enum schema has no name")
		}
		return &Enum{Name: obj.Name, Doc: obj.Doc, Symbols: obj.Symbols}, nil
	case "array":
		if obj.Items == nil {
			return nil, errors.New("array schema has no items")
		}
		items, err := parseNode(obj.Items)
		if err != nil {
			return nil, err
		}
		return &Array{Items: items}, nil
	case "map":
		if obj.Values == nil {
			return nil, errors.New("map schema has no values")
		}
		values, err := parseNode(obj.Values)
		if err != nil {
			return nil, err
		}
		return &Map{Values: values}, nil
	case "null", "boolean", "int", "long", "float", "double", "bytes", "string":
		// An annotated primitive, e.g. {"type": "string", "logicalType": "uuid"}.
		// Logical types other than decimal reduce to their underlying type.
		return Primitive(typ), nil
	case "":
		// "type" may itself be a nested schema object or union.
		if len(obj.Type) > 0 {
			return parseNode(obj.Type)
		}
		return &Opaque{Raw: data}, nil
	default:
		return &Opaque{Raw: data}, nil
	}
}
