// Package schema declares the positional field layout of every BWARM entity file.
//
// Schemas are static configuration: field order, mandatory flags and types are
// relied on positionally by the record validator, so a schema's length is the
// column count expected for its file.
package schema

import (
	"fmt"

	"github.com/JonMunkholm/bwarm/internal/vocab"
)

// Kind is the primitive type of a field.
type Kind int

const (
	KindString Kind = iota
	KindBoolean
	KindNumber
	KindDuration
	KindDate
	KindVocabulary
)

// String returns the lower-case type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindDuration:
		return "duration"
	case KindDate:
		return "date"
	case KindVocabulary:
		return "avs"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FieldType is a Kind plus, for vocabulary fields, the domain and whether the
// value may hold several pipe-separated tokens.
type FieldType struct {
	Kind       Kind
	Domain     vocab.Domain
	MultiValue bool
}

// String returns a free-text field type.
func String() FieldType { return FieldType{Kind: KindString} }

// Boolean returns a true/false field type.
func Boolean() FieldType { return FieldType{Kind: KindBoolean} }

// Number returns a decimal field type.
func Number() FieldType { return FieldType{Kind: KindNumber} }

// Duration returns an ISO-8601 duration field type.
func Duration() FieldType { return FieldType{Kind: KindDuration} }

// Date returns an ISO-8601 date or date-time field type.
func Date() FieldType { return FieldType{Kind: KindDate} }

// Vocabulary returns a controlled-vocabulary field type.
func Vocabulary(d vocab.Domain, multiValue bool) FieldType {
	return FieldType{Kind: KindVocabulary, Domain: d, MultiValue: multiValue}
}

func (t FieldType) String() string {
	if t.Kind != KindVocabulary {
		return t.Kind.String()
	}
	if t.MultiValue {
		return "avs:" + t.Domain.String() + "[]"
	}
	return "avs:" + t.Domain.String()
}

// FieldSpec describes one column of an entity file.
type FieldSpec struct {
	Name      string
	Mandatory bool
	Type      FieldType
}

// EntitySchema is the ordered field list for one entity.
type EntitySchema struct {
	Entity Entity
	Fields []FieldSpec

	index map[string]int
}

func newEntitySchema(e Entity, fields []FieldSpec) *EntitySchema {
	s := &EntitySchema{
		Entity: e,
		Fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("schema %s: duplicate field %q", e, f.Name))
		}
		s.index[f.Name] = i
	}
	return s
}

// Len returns the expected column count.
func (s *EntitySchema) Len() int { return len(s.Fields) }

// Index returns the position of the named field.
func (s *EntitySchema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Names returns the field names in column order.
func (s *EntitySchema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Row gives named access to a record's raw values. The caller must have
// checked that len(values) == s.Len().
func (s *EntitySchema) Row(values []string) Row {
	return Row{schema: s, values: values}
}

// Row is a record viewed through its schema.
type Row struct {
	schema *EntitySchema
	values []string
}

// Get returns the raw value of the named field. Asking for a field the schema
// does not declare is a programming error and panics.
func (r Row) Get(name string) string {
	i, ok := r.schema.index[name]
	if !ok {
		panic(fmt.Sprintf("schema %s: no field %q", r.schema.Entity, name))
	}
	return r.values[i]
}

// Empty reports whether the named field holds an empty value.
func (r Row) Empty(name string) bool { return r.Get(name) == "" }

// Present reports whether the named field holds a non-empty value.
func (r Row) Present(name string) bool { return r.Get(name) != "" }
