package core

import (
	"testing"

	"github.com/JonMunkholm/bwarm/internal/schema"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		entity  schema.Entity
		set     map[string]string
		wantMsg string // empty means the rule set passes
	}{
		// Works
		{
			name:    "works: reversion alternative without date",
			entity:  schema.Works,
			set:     map[string]string{"AlternativeWorkForUsStatutoryReversion": "W2"},
			wantMsg: "Condition not fulfilled for UsStatutoryReversionDate",
		},
		{
			name:   "works: reversion alternative with date",
			entity: schema.Works,
			set:    map[string]string{"AlternativeWorkForUsStatutoryReversion": "W2", "UsStatutoryReversionDate": "2030-01-01"},
		},
		{
			name:   "works: date without alternative",
			entity: schema.Works,
			set:    map[string]string{"UsStatutoryReversionDate": "2030-01-01"},
		},

		// Parties
		{
			name:    "parties: no identifiers but flag set",
			entity:  schema.Parties,
			set:     map[string]string{"ISNI": "", "NoValidContactInformationAvailable": "true"},
			wantMsg: "Condition not fulfilled for NoValidContactInformationAvailable",
		},
		{
			name:   "parties: flag set with ipi",
			entity: schema.Parties,
			set:    map[string]string{"ISNI": "", "IpiNameNumber": "00012345678", "NoValidContactInformationAvailable": "true"},
		},
		{
			name:   "parties: no identifiers and no flag",
			entity: schema.Parties,
			set:    map[string]string{"ISNI": ""},
		},

		// WorkRightShares
		{
			name:    "rights shares: no validity dates",
			entity:  schema.WorkRightShares,
			set:     map[string]string{"ValidityStartDate": "", "ValidityEndDate": ""},
			wantMsg: "Condition not fulfilled for ValidityStartDate and ValidityEndDate",
		},
		{
			name:   "rights shares: start only",
			entity: schema.WorkRightShares,
			set:    map[string]string{"ValidityEndDate": ""},
		},
		{
			name:   "rights shares: end only",
			entity: schema.WorkRightShares,
			set:    map[string]string{"ValidityStartDate": ""},
		},
		// The end date is compared against the start date, so an end that
		// precedes the start is reported.
		{
			name:    "rights shares: end before start",
			entity:  schema.WorkRightShares,
			set:     map[string]string{"ValidityStartDate": "2020-01-01", "ValidityEndDate": "2019-12-31"},
			wantMsg: "ValidityEndDate before ValidityStartDate",
		},
		{
			name:    "rights shares: end equals start",
			entity:  schema.WorkRightShares,
			set:     map[string]string{"ValidityStartDate": "2020-01-01", "ValidityEndDate": "2020-01-01"},
			wantMsg: "ValidityEndDate before ValidityStartDate",
		},
		{
			name:   "rights shares: mixed precision end after start",
			entity: schema.WorkRightShares,
			set:    map[string]string{"ValidityStartDate": "2020", "ValidityEndDate": "2020-06-30T12:00:00Z"},
		},

		// Recordings
		{
			name:    "recordings: producer name without provider",
			entity:  schema.Recordings,
			set:     map[string]string{"StudioProducerName": "Prod", "StudioProducerId": "SP1", "OriginalDataProviderName": ""},
			wantMsg: "Condition not fulfilled for OriginalDataProviderName",
		},
		{
			name:    "recordings: no producer id and no provider",
			entity:  schema.Recordings,
			set:     map[string]string{"OriginalDataProviderName": ""},
			wantMsg: "Condition not fulfilled for OriginalDataProviderName",
		},
		{
			name:   "recordings: producer id only, no provider",
			entity: schema.Recordings,
			set:    map[string]string{"StudioProducerId": "SP1", "OriginalDataProviderName": ""},
		},
		{
			name:   "recordings: provider present",
			entity: schema.Recordings,
			set:    map[string]string{"StudioProducerName": "Prod"},
		},

		// Releases
		{
			name:    "releases: label without provider",
			entity:  schema.Releases,
			set:     map[string]string{"LabelName": "Label", "ReleaseDate": "2021-05-01", "OriginalDataProviderName": ""},
			wantMsg: "Condition not fulfilled for OriginalDataProviderName",
		},
		{
			name:   "releases: date only, no provider",
			entity: schema.Releases,
			set:    map[string]string{"ReleaseDate": "2021-05-01", "OriginalDataProviderName": ""},
		},
		{
			name:    "releases: nothing set",
			entity:  schema.Releases,
			set:     map[string]string{"OriginalDataProviderName": ""},
			wantMsg: "Condition not fulfilled for OriginalDataProviderName",
		},

		// UnclaimedWorkRightShares
		{
			name:    "unclaimed: no recording reference",
			entity:  schema.UnclaimedWorkRightShares,
			set:     map[string]string{"FeedProvidersRecordingId": "", "RecordingTitle": "", "DspRecordingId": ""},
			wantMsg: "Condition not fulfilled for (FeedProvidersRecordingId, RecordingTitle, DspRecordingId)",
		},
		{
			name:   "unclaimed: dsp id only",
			entity: schema.UnclaimedWorkRightShares,
			set:    map[string]string{"FeedProvidersRecordingId": "", "RecordingTitle": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := schema.Get(tt.entity)
			fields := append([]string(nil), validRecords[tt.entity]...)
			for name, value := range tt.set {
				i, ok := s.Index(name)
				if !ok {
					t.Fatalf("unknown field %q", name)
				}
				fields[i] = value
			}
			row := s.Row(fields)

			var got []string
			for _, rule := range RulesFor(tt.entity) {
				if msg, failed := rule(row); failed {
					got = append(got, msg)
				}
			}

			if tt.wantMsg == "" {
				if len(got) != 0 {
					t.Errorf("got %v, want no failures", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.wantMsg {
				t.Errorf("got %v, want [%q]", got, tt.wantMsg)
			}
		})
	}
}

func TestRulesFor_EntitiesWithoutRules(t *testing.T) {
	for _, e := range []schema.Entity{
		schema.AlternativeWorkTitles,
		schema.WorkIdentifiers,
		schema.AlternativeRecordingTitles,
		schema.RecordingIdentifiers,
		schema.ReleaseIdentifiers,
		schema.WorkRecordings,
	} {
		if rules := RulesFor(e); len(rules) != 0 {
			t.Errorf("RulesFor(%s) = %d rules, want 0", e, len(rules))
		}
	}
}
