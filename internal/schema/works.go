package schema

import "github.com/JonMunkholm/bwarm/internal/vocab"

func init() {
	register(Works,
		FieldSpec{Name: "FeedProvidersWorkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "ISWC", Type: String()},
		FieldSpec{Name: "WorkTitle", Mandatory: true, Type: String()},
		FieldSpec{Name: "OpusNumber", Type: String()},
		FieldSpec{Name: "ComposerCatalogNumber", Type: String()},
		FieldSpec{Name: "NominalDuration", Type: Duration()},
		FieldSpec{Name: "HasRightsInDispute", Mandatory: true, Type: Boolean()},
		FieldSpec{Name: "TerritoryOfPublicDomain", Type: Vocabulary(vocab.Territories, true)},
		FieldSpec{Name: "IsArrangementOfTraditionalWork", Mandatory: true, Type: Boolean()},
		FieldSpec{Name: "AlternativeWorkForUsStatutoryReversion", Type: String()},
		FieldSpec{Name: "UsStatutoryReversionDate", Type: Date()},
	)

	register(AlternativeWorkTitles,
		FieldSpec{Name: "FeedProvidersWorkAlternativeTitleId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersWorkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "AlternativeTitle", Mandatory: true, Type: String()},
		FieldSpec{Name: "LanguageAndScriptCode", Type: String()},
		FieldSpec{Name: "TitleType", Type: Vocabulary(vocab.TitleTypes, false)},
	)

	register(WorkIdentifiers,
		FieldSpec{Name: "FeedProvidersWorkProprietaryIdentifierId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersWorkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "Identifier", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersAllocatingPartyId", Mandatory: true, Type: String()},
	)

	register(WorkRecordings,
		FieldSpec{Name: "FeedProvidersLinkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersWorkId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersRecordingId", Mandatory: true, Type: String()},
	)
}
