package core

// validation.go provides record-level validation for BWARM entity files.
//
// Validation happens at three levels:
//  1. Structure: the record must have exactly as many columns as its schema
//  2. Fields: each value is checked against its FieldSpec (presence, type, vocabulary)
//  3. Rules: cross-field conditions, only for records that passed 1 and 2
//
// A length mismatch short-circuits: no field checks are attempted because
// positions can no longer be trusted.

import (
	"fmt"

	"github.com/JonMunkholm/bwarm/internal/schema"
	"github.com/JonMunkholm/bwarm/internal/vocab"
)

// Validation message formats. The wording is part of the output contract:
// downstream tooling groups summary rows by message text.
const (
	msgIncorrectLength  = "Incorrect Number of records: expected %d found %d"
	msgMissingMandatory = "Missing Mandatory Field %s"
	msgInvalidType      = "Invalid %s field %s"
	msgInvalidAVS       = "Invalid AVS %s Value field '%s'"
	msgCondition        = "Condition not fulfilled for %s"
	msgFileUnreadable   = "File could not be read: %s"
	msgFileAbandoned    = "File validation stopped by internal error: %v"
)

// LengthMessage is reported when a record's column count differs from its schema.
func LengthMessage(expected, found int) string {
	return fmt.Sprintf(msgIncorrectLength, expected, found)
}

// MissingMandatoryMessage is reported for an empty mandatory field.
func MissingMandatoryMessage(field string) string {
	return fmt.Sprintf(msgMissingMandatory, field)
}

// InvalidFieldMessage is reported when a non-empty value fails its type check.
// Vocabulary fields quote the value as delivered, before any splitting.
func InvalidFieldMessage(spec schema.FieldSpec, value string) string {
	if spec.Type.Kind == schema.KindVocabulary {
		return fmt.Sprintf(msgInvalidAVS, spec.Type.Domain.Label(), value)
	}
	return fmt.Sprintf(msgInvalidType, spec.Type.Kind, spec.Name)
}

// ConditionMessage is reported when a cross-field rule is not met.
func ConditionMessage(subject string) string {
	return fmt.Sprintf(msgCondition, subject)
}

// FileUnreadableMessage is written to the detail log when an entity file
// cannot be opened or read.
func FileUnreadableMessage(err error) string {
	return fmt.Sprintf(msgFileUnreadable, err)
}

// FileAbandonedMessage is written to the detail log when validating an
// entity file panicked. Lines after the failing one are not checked.
func FileAbandonedMessage(cause any) string {
	return fmt.Sprintf(msgFileAbandoned, cause)
}

// RecordValidator validates records of one entity against its schema and
// cross-field rules. It holds no mutable state and is safe for concurrent use.
type RecordValidator struct {
	schema  *schema.EntitySchema
	catalog *vocab.Catalog
	rules   []Rule
}

// NewRecordValidator creates a validator for entity e. The catalog supplies
// the vocabulary sets; it must stay unchanged while the validator is in use.
func NewRecordValidator(e schema.Entity, catalog *vocab.Catalog) (*RecordValidator, error) {
	s, ok := schema.Get(e)
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownEntity, e)
	}
	return &RecordValidator{
		schema:  s,
		catalog: catalog,
		rules:   RulesFor(e),
	}, nil
}

// Schema returns the entity schema the validator checks against.
func (v *RecordValidator) Schema() *schema.EntitySchema {
	return v.schema
}

// Validate checks a single record and returns every problem found.
func (v *RecordValidator) Validate(rec Record) ValidationOutcome {
	result := ValidationOutcome{Valid: true}

	newError := func(msg string) ValidationError {
		return ValidationError{
			Snapshot: rec.Snapshot,
			Entity:   rec.Entity,
			RecordID: rec.ID(),
			Line:     rec.Line,
			Message:  msg,
		}
	}

	if len(rec.Fields) != v.schema.Len() {
		result.Valid = false
		result.Errors = append(result.Errors, newError(LengthMessage(v.schema.Len(), len(rec.Fields))))
		return result
	}

	for i, spec := range v.schema.Fields {
		value := rec.Fields[i]

		if value == "" {
			if spec.Mandatory {
				result.Errors = append(result.Errors, newError(MissingMandatoryMessage(spec.Name)))
			}
			continue
		}

		if !CheckValue(v.catalog, spec.Type, value) {
			result.Errors = append(result.Errors, newError(InvalidFieldMessage(spec, value)))
		}
	}

	if len(result.Errors) > 0 {
		result.Valid = false
		return result
	}

	row := v.schema.Row(rec.Fields)
	for _, rule := range v.rules {
		if msg, failed := rule(row); failed {
			result.Errors = append(result.Errors, newError(msg))
		}
	}
	result.Valid = len(result.Errors) == 0

	return result
}
