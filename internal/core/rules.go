package core

import (
	"github.com/JonMunkholm/bwarm/internal/schema"
)

// Rule is a cross-field condition over one structurally valid record.
// It returns the message to report and true when the condition is not met.
type Rule func(row schema.Row) (string, bool)

var entityRules = map[schema.Entity][]Rule{
	schema.Works:                    {usStatutoryReversionRule},
	schema.Parties:                  {partyContactRule},
	schema.WorkRightShares:          {validityPeriodRule},
	schema.Recordings:               {recordingProviderRule},
	schema.Releases:                 {releaseProviderRule},
	schema.UnclaimedWorkRightShares: {unclaimedIdentificationRule},
}

// RulesFor returns the cross-field rules of entity e. Entities without rules
// return nil.
func RulesFor(e schema.Entity) []Rule {
	return entityRules[e]
}

// A work that names an alternative for US statutory reversion must say when
// the reversion happens.
func usStatutoryReversionRule(row schema.Row) (string, bool) {
	if row.Present("AlternativeWorkForUsStatutoryReversion") && row.Empty("UsStatutoryReversionDate") {
		return ConditionMessage("UsStatutoryReversionDate"), true
	}
	return "", false
}

// NoValidContactInformationAvailable may only be given for a party that
// carries at least one of its standard identifiers.
func partyContactRule(row schema.Row) (string, bool) {
	if row.Empty("ISNI") && row.Empty("IpiNameNumber") && row.Empty("CisacSocietyId") &&
		row.Present("NoValidContactInformationAvailable") {
		return ConditionMessage("NoValidContactInformationAvailable"), true
	}
	return "", false
}

// A right share needs a validity period, and the period must end after it
// starts.
func validityPeriodRule(row schema.Row) (string, bool) {
	start, end := row.Get("ValidityStartDate"), row.Get("ValidityEndDate")

	if start == "" && end == "" {
		return ConditionMessage("ValidityStartDate and ValidityEndDate"), true
	}
	if start == "" || end == "" {
		return "", false
	}

	startAt, ok1 := ParseDate(start)
	endAt, ok2 := ParseDate(end)
	if !ok1 || !ok2 {
		// Unparseable dates were already reported by the field checks.
		return "", false
	}
	if !endAt.After(startAt) {
		return "ValidityEndDate before ValidityStartDate", true
	}
	return "", false
}

func recordingProviderRule(row schema.Row) (string, bool) {
	return providerRule(row, "StudioProducerName", "StudioProducerId")
}

func releaseProviderRule(row schema.Row) (string, bool) {
	return providerRule(row, "LabelName", "ReleaseDate")
}

// providerRule requires OriginalDataProviderName when the named field is set
// or the fallback field is empty.
func providerRule(row schema.Row, named, fallback string) (string, bool) {
	if (row.Present(named) || row.Empty(fallback)) && row.Empty("OriginalDataProviderName") {
		return ConditionMessage("OriginalDataProviderName"), true
	}
	return "", false
}

// An unclaimed share must be identifiable by at least one recording reference.
func unclaimedIdentificationRule(row schema.Row) (string, bool) {
	if row.Empty("FeedProvidersRecordingId") && row.Empty("RecordingTitle") && row.Empty("DspRecordingId") {
		return ConditionMessage("(FeedProvidersRecordingId, RecordingTitle, DspRecordingId)"), true
	}
	return "", false
}
