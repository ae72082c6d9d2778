// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

const DefaultDocWidth = 80

// Translator converts top-level Avro schemas into TypeScript declarations.
// All of its state is scoped to the one value, so independent conversions
// cannot leak resolved names into each other.
type Translator struct {
	resolved *orderedmap.OrderedMap[string, string] // declared name -> generated identifier
	mod      *Module
	diags    []Diagnostic

	typeMappings map[string]string
	docWidth     int
}

func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		resolved: orderedmap.NewOrderedMap[string, string](),
		mod:      NewModule(""),
		docWidth: DefaultDocWidth,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type TranslatorOption func(t *Translator)

// TypeMappings overrides how primitive type names are rendered,
// e.g. {"bytes": "Uint8Array", "long": "bigint"}.
func TypeMappings(typeMappings map[string]string) TranslatorOption {
	return func(t *Translator) {
		t.typeMappings = typeMappings
	}
}

func DocWidth(width int) TranslatorOption {
	return func(t *Translator) {
		if width > 0 {
			t.docWidth = width
		}
	}
}

// Translate appends the declarations for a top-level record or enum schema
// to the translator's module. Nested named types land in the module before
// the declaration that contains them.
func (t *Translator) Translate(s Schema) error {
	switch s := s.(type) {
	case *Record:
		t.translateRecord(s, nil)
	case *Enum:
		t.translateEnum(s)
	default:
		return fmt.Errorf("top-level schema must be a record or an enum, got %T", s)
	}
	return nil
}

func (t *Translator) Module() *Module {
	return t.mod
}

// Diagnostics returns the non-fatal problems hit so far, in order.
func (t *Translator) Diagnostics() []Diagnostic {
	return t.diags
}

func (t *Translator) Render() []byte {
	return t.mod.Render()
}

type Diagnostic struct {
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}

func (t *Translator) report(s Schema) {
	var msg string
	if o, ok := s.(*Opaque); ok {
		msg = "unrecognized schema shape: " + bytesToString(o.Raw)
	} else {
		msg = fmt.Sprintf("unrecognized schema node %T", s)
	}
	t.diags = append(t.diags, Diagnostic{Message: msg})
}

func (t *Translator) translateRecord(rec *Record, parent *Record) string {
	name := interfaceName(rec, parent)

	var sb strings.Builder
	sb.WriteString(formatDoc(rec.Doc, t.docWidth, ""))
	fmt.Fprintf(&sb, "export interface %s {\n", name)
	for _, field := range rec.Fields {
		sb.WriteString(t.translateField(field, rec))
	}
	sb.WriteString("}")

	t.mod.Defs.Set(name, sb.String())
	t.resolved.Set(rec.Name, name)
	return name
}

func interfaceName(rec *Record, parent *Record) string {
	if parent != nil {
		return "I" + stripNamespace(parent.Name) + stripNamespace(rec.Name)
	}
	return "I" + stripNamespace(rec.Name)
}

func (t *Translator) translateField(field Field, parent *Record) string {
	var sb strings.Builder
	sb.WriteString(formatDoc(field.Doc, t.docWidth, "\t"))

	typ := t.translateType(field.Type, parent, field.HasDefault)
	if isOptional(field.Type) && !field.HasDefault {
		fmt.Fprintf(&sb, "\t%s?: %s;\n", field.Name, typ)
	} else {
		fmt.Fprintf(&sb, "\t%s: %s;\n", field.Name, typ)
	}
	return sb.String()
}

// isOptional reports whether a schema admits no value at all: the null
// primitive, or a union with a null member.
func isOptional(s Schema) bool {
	switch s := s.(type) {
	case Primitive:
		return s == Null
	case Union:
		for _, member := range s {
			if member == Null {
				return true
			}
		}
	}
	return false
}

func (t *Translator) translateEnum(enum *Enum) string {
	// Enum identifiers are never parent-qualified, unlike nested records.
	name := stripNamespace(enum.Name)

	var sb strings.Builder
	sb.WriteString(formatDoc(enum.Doc, t.docWidth, ""))
	fmt.Fprintf(&sb, "export enum %s {\n", name)
	for _, symbol := range enum.Symbols {
		fmt.Fprintf(&sb, "\t%s = %q,\n", symbol, symbol)
	}
	sb.WriteString("}")

	t.mod.Defs.Set(name, sb.String())
	t.resolved.Set(enum.Name, name)
	return name
}

// translateType renders a schema node as a TypeScript type expression.
// hasDefault only matters for the null primitive and is not threaded past
// array items or map values.
func (t *Translator) translateType(s Schema, parent *Record, hasDefault bool) string {
	switch s := s.(type) {
	case Primitive:
		return t.translatePrimitive(s, hasDefault)
	case Union:
		terms := orderedmap.NewOrderedMap[string, struct{}]()
		for _, member := range s {
			terms.Set(t.translateType(member, parent, hasDefault), struct{}{})
		}
		parts := make([]string, 0, terms.Len())
		for term := range terms.Keys() {
			parts = append(parts, term)
		}
		return strings.Join(parts, " | ")
	case *Record:
		return t.translateRecord(s, parent)
	case *Enum:
		return t.translateEnum(s)
	case *Array:
		elem := t.translateType(s.Items, parent, false)
		if strings.Contains(elem, " | ") {
			return fmt.Sprintf("Array<%s>", elem)
		}
		return elem + "[]"
	case *Map:
		return fmt.Sprintf("{ [key in string]: %s }", t.translateType(s.Values, parent, false))
	case *Decimal:
		return "number"
	default:
		t.report(s)
		return "any"
	}
}

func (t *Translator) translatePrimitive(p Primitive, hasDefault bool) string {
	if typ, ok := t.typeMappings[string(p)]; ok {
		return typ
	}

	switch p {
	case Long, Int, Double, Float:
		return "number"
	case Bytes:
		return "Buffer"
	case Boolean:
		return "boolean"
	case Null:
		if hasDefault {
			return "null"
		}
		return "null | undefined"
	default:
		return t.resolveReference(string(p))
	}
}

// resolveReference maps a type reference to its generated identifier.
// The table is keyed by raw declared names; lookup falls back to comparing
// namespace-stripped names, and an unknown reference passes through
// stripped, assuming an externally defined type.
func (t *Translator) resolveReference(ref string) string {
	if name, ok := t.resolved.Get(ref); ok {
		return name
	}
	stripped := stripNamespace(ref)
	for declared, name := range t.resolved.AllFromFront() {
		if stripNamespace(declared) == stripped {
			return name
		}
	}
	return stripped
}

// Translate converts a single top-level schema into declaration text.
func Translate(s Schema, opts ...TranslatorOption) ([]byte, error) {
	t := NewTranslator(opts...)
	if err := t.Translate(s); err != nil {
		return nil, err
	}
	return t.Render(), nil
}
