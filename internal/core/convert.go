package core

// convert.go provides the per-type field checks applied to non-empty values.
//
// Every check is a pure predicate over the raw string. Values are never
// trimmed or normalised first: a field is valid exactly as delivered or not
// at all.

import (
	"regexp"
	"strings"
	"time"

	"github.com/JonMunkholm/bwarm/internal/schema"
	"github.com/JonMunkholm/bwarm/internal/vocab"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sosodev/duration"
)

// MultiValueSeparator splits multi-value vocabulary fields.
const MultiValueSeparator = "|"

// decimalRegex accepts plain decimals only: no exponent, no grouping, no
// surrounding whitespace.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ISO-8601 calendar date and date-time layouts, most specific first. Go's
// parser accepts fractional seconds after the seconds field even when the
// layout does not spell them out.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

// IsBoolean reports whether s is "true" or "false", ignoring case.
func IsBoolean(s string) bool {
	l := strings.ToLower(s)
	return l == "true" || l == "false"
}

// ToNumeric parses s as an arbitrary-precision decimal.
// Returns invalid for anything that is not a plain finite decimal.
func ToNumeric(s string) pgtype.Numeric {
	if !decimalRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// IsNumber reports whether s is a valid decimal number.
func IsNumber(s string) bool {
	return ToNumeric(s).Valid
}

// IsDuration reports whether s is an ISO-8601 duration such as PT1H2M3S.
func IsDuration(s string) bool {
	// A bare designator ("P", "PT") carries no amount.
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	_, err := duration.Parse(s)
	return err == nil
}

// ParseDate parses an ISO-8601 date or date-time. Values without an offset
// are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether s is an ISO-8601 date or date-time.
func IsDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// IsMember reports whether value belongs to set. When multiValue is set the
// value is split on "|" and every token must be a member; checking stops at
// the first token that is not.
func IsMember(set *vocab.Set, value string, multiValue bool) bool {
	if set == nil {
		return false
	}
	if !multiValue {
		return set.Contains(value)
	}
	for _, tok := range strings.Split(value, MultiValueSeparator) {
		if !set.Contains(tok) {
			return false
		}
	}
	return true
}

// CheckValue applies the check for ft to a non-empty value. String fields
// always pass.
func CheckValue(cat *vocab.Catalog, ft schema.FieldType, value string) bool {
	switch ft.Kind {
	case schema.KindString:
		return true
	case schema.KindBoolean:
		return IsBoolean(value)
	case schema.KindNumber:
		return IsNumber(value)
	case schema.KindDuration:
		return IsDuration(value)
	case schema.KindDate:
		return IsDate(value)
	case schema.KindVocabulary:
		if cat == nil {
			return false
		}
		set, err := cat.Set(ft.Domain)
		if err != nil {
			return false
		}
		return IsMember(set, value, ft.MultiValue)
	default:
		return false
	}
}
