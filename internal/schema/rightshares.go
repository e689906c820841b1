package schema

import "github.com/JonMunkholm/bwarm/internal/vocab"

func init() {
	register(WorkRightShares,
		FieldSpec{Name: "FeedProvidersWorkRightShareId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersWorkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersPartyId", Mandatory: true, Type: String()},
		FieldSpec{Name: "PartyRole", Type: Vocabulary(vocab.PartyRoles, false)},
		FieldSpec{Name: "RightSharePercentage", Type: Number()},
		FieldSpec{Name: "RightShareType", Type: Vocabulary(vocab.RightShareTypes, true)},
		FieldSpec{Name: "RightsType", Type: Vocabulary(vocab.RightTypes, true)},
		FieldSpec{Name: "ValidityStartDate", Type: Date()},
		FieldSpec{Name: "ValidityEndDate", Type: Date()},
		FieldSpec{Name: "FeedProvidersParentWorkRightShareId", Type: String()},
		FieldSpec{Name: "TerritoryCode", Type: Vocabulary(vocab.Territories, true)},
		FieldSpec{Name: "UseType", Type: Vocabulary(vocab.UseTypes, true)},
	)

	register(UnclaimedWorkRightShares,
		FieldSpec{Name: "FeedProvidersRightShareId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersRecordingId", Type: String()},
		FieldSpec{Name: "FeedProvidersWorkId", Type: String()},
		FieldSpec{Name: "ISRC", Type: String()},
		FieldSpec{Name: "DspRecordingId", Mandatory: true, Type: String()},
		FieldSpec{Name: "RecordingTitle", Type: String()},
		FieldSpec{Name: "RecordingSubTitle", Type: String()},
		FieldSpec{Name: "AlternativeRecordingTitle", Type: String()},
		FieldSpec{Name: "DisplayArtistName", Type: String()},
		FieldSpec{Name: "DisplayArtistISNI", Type: String()},
		FieldSpec{Name: "Duration", Type: Duration()},
		FieldSpec{Name: "UnclaimedPercentage", Mandatory: true, Type: Number()},
		FieldSpec{Name: "PercentileForPrioritisation", Type: Number()},
	)
}
