// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package avrots

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema_Primitive(t *testing.T) {
	s, err := ParseSchema([]byte(`"string"`))
	require.NoError(t, err)
	assert.Equal(t, String, s)

	s, err = ParseSchema([]byte(`"com.example.Other"`))
	require.NoError(t, err)
	assert.Equal(t, Primitive("com.example.Other"), s)
}

func TestParseSchema_Union(t *testing.T) {
	s, err := ParseSchema([]byte(`["null", "string"]`))
	require.NoError(t, err)
	assert.Equal(t, Union{Null, String}, s)
}

func TestParseSchema_Record(t *testing.T) {
	src := `{
		"type": "record",
		"name": "com.example.User",
		"doc": "A user.",
		"fields": [
			{"name": "id", "type": "long", "doc": "Numeric id."},
			{"name": "email", "type": ["null", "string"], "default": null},
			{"name": "role", "type": "string", "default": "viewer"}
		]
	}`
	s, err := ParseSchema([]byte(src))
	require.NoError(t, err)

	rec, ok := s.(*Record)
	require.True(t, ok)
	assert.Equal(t, "com.example.User", rec.Name)
	assert.Equal(t, "A user.", rec.Doc)
	require.Len(t, rec.Fields, 3)

	assert.Equal(t, "id", rec.Fields[0].Name)
	assert.Equal(t, "Numeric id.", rec.Fields[0].Doc)
	assert.Equal(t, Long, rec.Fields[0].Type)
	assert.False(t, rec.Fields[0].HasDefault)

	// An explicit null default is still a default.
	assert.True(t, rec.Fields[1].HasDefault)
	assert.Equal(t, json.RawMessage("null"), rec.Fields[1].Default)

	assert.True(t, rec.Fields[2].HasDefault)
	assert.Equal(t, json.RawMessage(`"viewer"`), rec.Fields[2].Default)
}

func TestParseSchema_RecordWithoutName(t *testing.T) {
	_, err := ParseSchema([]byte(`{"type": "record", "fields": []}`))
	require.Error(t, err)
}

func TestParseSchema_Enum(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "enum", "name": "Color", "symbols": ["RED", "GREEN"]}`))
	require.NoError(t, err)
	assert.Equal(t, &Enum{Name: "Color", Symbols: []string{"RED", "GREEN"}}, s)
}

func TestParseSchema_ArrayAndMap(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "array", "items": "string"}`))
	require.NoError(t, err)
	assert.Equal(t, &Array{Items: String}, s)

	s, err = ParseSchema([]byte(`{"type": "map", "values": {"type": "array", "items": "long"}}`))
	require.NoError(t, err)
	assert.Equal(t, &Map{Values: &Array{Items: Long}}, s)
}

func TestParseSchema_Decimal(t *testing.T) {
	src := `{"type": "bytes", "logicalType": "decimal", "precision": 10, "scale": 2}`
	s, err := ParseSchema([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, &Decimal{Precision: 10, Scale: 2}, s)
}

func TestParseSchema_OtherLogicalTypesReduce(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "string", "logicalType": "uuid"}`))
	require.NoError(t, err)
	assert.Equal(t, String, s)

	s, err = ParseSchema([]byte(`{"type": "long", "logicalType": "timestamp-millis"}`))
	require.NoError(t, err)
	assert.Equal(t, Long, s)
}

func TestParseSchema_UnknownShape(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "fixed", "name": "MD5", "size": 16}`))
	require.NoError(t, err)
	_, ok := s.(*Opaque)
	assert.True(t, ok)
}

func TestParseSchema_Invalid(t *testing.T) {
	_, err := ParseSchema([]byte(`123`))
	require.Error(t, err)

	_, err = ParseSchema([]byte(`{"type": "array"}`))
	require.Error(t, err)

	_, err = ParseSchema([]byte(`not json`))
	require.Error(t, err)
}
