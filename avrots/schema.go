// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import "encoding/json"

// Schema is one node of an Avro schema tree.
type Schema interface {
	schemaNode()
}

// Primitive is either one of the Avro primitive type names or a reference
// to a previously declared named type.
type Primitive string

const (
	Null    Primitive = "null"
	Boolean Primitive = "boolean"
	Int     Primitive = "int"
	Long    Primitive = "long"
	Float   Primitive = "float"
	Double  Primitive = "double"
	Bytes   Primitive = "bytes"
	String  Primitive = "string"
)

type Record struct {
	Name   string
	Doc    string
	Fields []Field
}

type Field struct {
	Name string
	Doc  string
	Type Schema
	// Default is the raw default value; "null" for an explicit null default.
	Default json.RawMessage
	// HasDefault reports whether the default key was present at all.
	HasDefault bool
}

type Enum struct {
	Name    string
	Doc     string
	Symbols []string
}

type Array struct {
	Items Schema
}

type Map struct {
	Values Schema
}

// Union is an ordered sequence of alternative schemas.
type Union []Schema

// Decimal is the decimal logical type together with its metadata.
type Decimal struct {
	Precision int
	Scale     int
}

// Opaque carries a schema shape the parser does not recognize.
type Opaque struct {
	Raw json.RawMessage
}

func (Primitive) schemaNode() {}
func (*Record) schemaNode()   {}
func (*Enum) schemaNode()     {}
func (*Array) schemaNode()    {}
func (*Map) schemaNode()      {}
func (Union) schemaNode()     {}
func (*Decimal) schemaNode()  {}
func (*Opaque) schemaNode()   {}

// RootName returns the stripped name of a top-level record or enum,
// or "" if the schema cannot be a top-level declaration.
func RootName(s Schema) string {
	switch s := s.(type) {
	case *Record:
		return stripNamespace(s.Name)
	case *Enum:
		return stripNamespace(s.Name)
	default:
		return ""
	}
}

// stripNamespace returns the part of a declared name after the last dot.
func stripNamespace(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
