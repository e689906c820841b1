package core

import (
	"testing"
	"time"

	"github.com/JonMunkholm/bwarm/internal/schema"
	"github.com/JonMunkholm/bwarm/internal/vocab"
)

// ----------------------------------------------------------------------------
// IsBoolean Tests
// ----------------------------------------------------------------------------

func TestIsBoolean(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", true},
		{"TRUE", true},
		{"False", true},
		{"yes", false},
		{"1", false},
		{"0", false},
		{" true", false},
		{"true ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsBoolean(tt.input); got != tt.want {
				t.Errorf("IsBoolean(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToNumeric / IsNumber Tests
// ----------------------------------------------------------------------------

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		// Valid
		{name: "integer", input: "100", wantValid: true, wantValue: "100"},
		{name: "zero", input: "0", wantValid: true, wantValue: "0"},
		{name: "negative", input: "-12", wantValid: true, wantValue: "-12"},
		{name: "explicit plus", input: "+5", wantValid: true, wantValue: "5"},
		{name: "decimal", input: "33.33", wantValid: true, wantValue: "33.33"},
		{name: "leading point", input: ".5", wantValid: true, wantValue: "0.5"},
		{name: "trailing point", input: "50.", wantValid: true, wantValue: "50"},
		{name: "long fraction", input: "12.3456789012345678901234567890", wantValid: true, wantValue: "12.3456789012345678901234567890"},

		// Invalid
		{name: "empty", input: "", wantValid: false},
		{name: "text", input: "abc", wantValid: false},
		{name: "exponent", input: "1e5", wantValid: false},
		{name: "upper exponent", input: "1E5", wantValid: false},
		{name: "thousands separator", input: "1,000", wantValid: false},
		{name: "percent sign", input: "50%", wantValid: false},
		{name: "leading space", input: " 5", wantValid: false},
		{name: "trailing space", input: "5 ", wantValid: false},
		{name: "NaN", input: "NaN", wantValid: false},
		{name: "Infinity", input: "Infinity", wantValid: false},
		{name: "negative Infinity", input: "-Infinity", wantValid: false},
		{name: "lone point", input: ".", wantValid: false},
		{name: "two points", input: "1.2.3", wantValid: false},
		{name: "lone sign", input: "-", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumeric(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("ToNumeric(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if !tt.wantValid {
				return
			}
			want := ToNumeric(tt.wantValue)
			f1, err1 := got.Float64Value()
			f2, err2 := want.Float64Value()
			if err1 != nil || err2 != nil {
				t.Fatalf("Float64Value errors: %v, %v", err1, err2)
			}
			if f1.Float64 != f2.Float64 {
				t.Errorf("ToNumeric(%q) = %v, want %v", tt.input, f1.Float64, f2.Float64)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	if !IsNumber("42.5") {
		t.Error("IsNumber(42.5) = false, want true")
	}
	if IsNumber("4 2") {
		t.Error("IsNumber(4 2) = true, want false")
	}
}

// ----------------------------------------------------------------------------
// IsDuration Tests
// ----------------------------------------------------------------------------

func TestIsDuration(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"PT3M20S", true},
		{"PT1H2M3S", true},
		{"PT0S", true},
		{"P1D", true},
		{"P1DT2H", true},
		{"P", false},
		{"PT", false},
		{"3:20", false},
		{"200", false},
		{"T3M", false},
		{"PT3X", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsDuration(tt.input); got != tt.want {
				t.Errorf("IsDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseDate Tests
// ----------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   time.Time
	}{
		{name: "calendar date", input: "2024-01-15", wantOK: true, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "year month", input: "2024-03", wantOK: true, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year only", input: "1999", wantOK: true, want: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date time", input: "2024-01-15T10:30:00", wantOK: true, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "date time zulu", input: "2024-01-15T10:30:00Z", wantOK: true, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "date time offset", input: "2024-01-15T12:30:00+02:00", wantOK: true, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "fractional seconds", input: "2024-01-15T10:30:00.250", wantOK: true, want: time.Date(2024, 1, 15, 10, 30, 0, 250_000_000, time.UTC)},
		{name: "hour minute", input: "2024-01-15T10:30", wantOK: true, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},

		{name: "slashes", input: "01/15/2024", wantOK: false},
		{name: "month name", input: "Jan 15, 2024", wantOK: false},
		{name: "month 13", input: "2024-13-01", wantOK: false},
		{name: "february 30", input: "2024-02-30", wantOK: false},
		{name: "compact", input: "20240115", wantOK: false},
		{name: "trailing space", input: "2024-01-15 ", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// IsMember / CheckValue Tests
// ----------------------------------------------------------------------------

func TestIsMember(t *testing.T) {
	set := vocab.NewSet(vocab.UseTypes, "Stream", "Download", "Webcast")

	tests := []struct {
		name  string
		value string
		multi bool
		want  bool
	}{
		{"single member", "Stream", false, true},
		{"single non-member", "Radio", false, false},
		{"case sensitive", "stream", false, false},
		{"pipe in single-value field", "Stream|Download", false, false},
		{"multi all members", "Stream|Download", true, true},
		{"multi one member", "Webcast", true, true},
		{"multi with bad token", "Stream|Radio", true, false},
		{"multi with empty token", "Stream|", true, false},
		{"multi leading pipe", "|Stream", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMember(set, tt.value, tt.multi); got != tt.want {
				t.Errorf("IsMember(%q, multi=%v) = %v, want %v", tt.value, tt.multi, got, tt.want)
			}
		})
	}

	if IsMember(nil, "Stream", false) {
		t.Error("IsMember(nil set) = true, want false")
	}
}

func TestCheckValue(t *testing.T) {
	cat := vocab.NewCatalog(
		vocab.NewSet(vocab.Territories, "US", "GB", "Worldwide"),
		vocab.NewSet(vocab.UseTypes, "Stream"),
	)

	tests := []struct {
		name  string
		ft    schema.FieldType
		value string
		want  bool
	}{
		{"string accepts anything", schema.String(), "  anything at all ", true},
		{"boolean", schema.Boolean(), "TRUE", true},
		{"bad boolean", schema.Boolean(), "Y", false},
		{"number", schema.Number(), "12.5", true},
		{"bad number", schema.Number(), "12,5", false},
		{"duration", schema.Duration(), "PT4M", true},
		{"bad duration", schema.Duration(), "4:00", false},
		{"date", schema.Date(), "2020-12-31", true},
		{"bad date", schema.Date(), "31/12/2020", false},
		{"territory list", schema.Vocabulary(vocab.Territories, true), "US|GB", true},
		{"territory list with unknown", schema.Vocabulary(vocab.Territories, true), "US|XX", false},
		{"use type", schema.Vocabulary(vocab.UseTypes, false), "Stream", true},
		{"domain not in catalog", schema.Vocabulary(vocab.PartyRoles, false), "Composer", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckValue(cat, tt.ft, tt.value); got != tt.want {
				t.Errorf("CheckValue(%s, %q) = %v, want %v", tt.ft, tt.value, got, tt.want)
			}
		})
	}
}
