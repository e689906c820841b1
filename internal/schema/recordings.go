package schema

import "github.com/JonMunkholm/bwarm/internal/vocab"

func init() {
	register(Recordings,
		FieldSpec{Name: "FeedProvidersRecordingId", Mandatory: true, Type: String()},
		FieldSpec{Name: "ISRC", Type: String()},
		FieldSpec{Name: "RecordingTitle", Mandatory: true, Type: String()},
		FieldSpec{Name: "RecordingSubTitle", Type: String()},
		FieldSpec{Name: "DisplayArtistName", Mandatory: true, Type: String()},
		FieldSpec{Name: "DisplayArtistISNI", Type: String()},
		FieldSpec{Name: "PLine", Type: String()},
		FieldSpec{Name: "Duration", Type: Duration()},
		FieldSpec{Name: "FeedProvidersReleaseId", Type: String()},
		FieldSpec{Name: "StudioProducerName", Type: String()},
		FieldSpec{Name: "StudioProducerId", Type: String()},
		FieldSpec{Name: "OriginalDataProviderName", Type: String()},
		FieldSpec{Name: "OriginalDataProviderDPID", Type: String()},
		FieldSpec{Name: "IsDataProvidedAsReceived", Type: Boolean()},
	)

	register(AlternativeRecordingTitles,
		FieldSpec{Name: "FeedProvidersRecordingAlternativeTitleId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersRecordingId", Mandatory: true, Type: String()},
		FieldSpec{Name: "AlternativeTitle", Mandatory: true, Type: String()},
		FieldSpec{Name: "LanguageAndScriptCode", Type: String()},
		FieldSpec{Name: "TitleType", Type: Vocabulary(vocab.TitleTypes, false)},
	)

	register(RecordingIdentifiers,
		FieldSpec{Name: "FeedProvidersRecordingProprietaryIdentifierId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersRecordingId", Mandatory: true, Type: String()},
		FieldSpec{Name: "Identifier", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersAllocatingPartyId", Mandatory: true, Type: String()},
	)
}
