package schema

import (
	"errors"
	"testing"

	"github.com/JonMunkholm/bwarm/internal/vocab"
)

func TestRegistry_AllEntities(t *testing.T) {
	tests := []struct {
		entity  Entity
		file    string
		columns int
	}{
		{Works, "works.tsv", 11},
		{AlternativeWorkTitles, "workalternativetitles.tsv", 5},
		{WorkIdentifiers, "workidentifiers.tsv", 4},
		{Parties, "parties.tsv", 14},
		{WorkRightShares, "workrightshares.tsv", 12},
		{Recordings, "recordings.tsv", 14},
		{AlternativeRecordingTitles, "recordingalternativetitles.tsv", 5},
		{RecordingIdentifiers, "recordingidentifiers.tsv", 4},
		{Releases, "releases.tsv", 11},
		{ReleaseIdentifiers, "releaseidentifiers.tsv", 4},
		{WorkRecordings, "worksrecordings.tsv", 3},
		{UnclaimedWorkRightShares, "unclaimedworkrightshares.tsv", 13},
	}

	if Count() != len(tests) {
		t.Fatalf("Count() = %d, want %d", Count(), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.entity.String(), func(t *testing.T) {
			s, ok := Get(tt.entity)
			if !ok {
				t.Fatalf("Get(%s) not registered", tt.entity)
			}
			if s.Len() != tt.columns {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.columns)
			}
			if got := tt.entity.FileName(); got != tt.file {
				t.Errorf("FileName() = %q, want %q", got, tt.file)
			}
			if !s.Fields[0].Mandatory {
				t.Errorf("first field %q must be mandatory (it is the record id)", s.Fields[0].Name)
			}
		})
	}
}

func TestAll_Ordered(t *testing.T) {
	all := All()
	for i, s := range all {
		if s.Entity != Entity(i) {
			t.Errorf("All()[%d] = %s, want %s", i, s.Entity, Entity(i))
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in      string
		want    Entity
		wantErr bool
	}{
		{"works", Works, false},
		{"Works", Works, false},
		{"worksrecordings", WorkRecordings, false},
		{"WorkRecordings", WorkRecordings, false},
		{"unclaimedworkrightshares", UnclaimedWorkRightShares, false},
		{"recordingalternativetitles", AlternativeRecordingTitles, false},
		{"nope", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Lookup(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEntity) {
					t.Errorf("Lookup(%q) error = %v, want ErrUnknownEntity", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldTypes(t *testing.T) {
	works, _ := Get(Works)

	tests := []struct {
		field     string
		want      FieldType
		mandatory bool
	}{
		{"FeedProvidersWorkId", String(), true},
		{"NominalDuration", Duration(), false},
		{"HasRightsInDispute", Boolean(), true},
		{"TerritoryOfPublicDomain", Vocabulary(vocab.Territories, true), false},
		{"UsStatutoryReversionDate", Date(), false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			i, ok := works.Index(tt.field)
			if !ok {
				t.Fatalf("Index(%q) not found", tt.field)
			}
			f := works.Fields[i]
			if f.Type != tt.want {
				t.Errorf("Type = %s, want %s", f.Type, tt.want)
			}
			if f.Mandatory != tt.mandatory {
				t.Errorf("Mandatory = %v, want %v", f.Mandatory, tt.mandatory)
			}
		})
	}
}

func TestFieldType_String(t *testing.T) {
	tests := []struct {
		ft   FieldType
		want string
	}{
		{String(), "string"},
		{Boolean(), "boolean"},
		{Number(), "number"},
		{Duration(), "duration"},
		{Date(), "date"},
		{Vocabulary(vocab.UseTypes, false), "avs:UseTypes"},
		{Vocabulary(vocab.UseTypes, true), "avs:UseTypes[]"},
	}
	for _, tt := range tests {
		if got := tt.ft.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRow_Get(t *testing.T) {
	s, _ := Get(WorkRecordings)
	row := s.Row([]string{"L1", "W1", ""})

	if got := row.Get("FeedProvidersWorkId"); got != "W1" {
		t.Errorf("Get(FeedProvidersWorkId) = %q, want W1", got)
	}
	if !row.Empty("FeedProvidersRecordingId") {
		t.Error("Empty(FeedProvidersRecordingId) = false, want true")
	}
	if !row.Present("FeedProvidersLinkId") {
		t.Error("Present(FeedProvidersLinkId) = false, want true")
	}

	defer func() {
		if recover() == nil {
			t.Error("Get on undeclared field did not panic")
		}
	}()
	row.Get("ISRC")
}

func TestNewEntitySchema_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate field name did not panic")
		}
	}()
	newEntitySchema(Works, []FieldSpec{{Name: "A"}, {Name: "A"}})
}
