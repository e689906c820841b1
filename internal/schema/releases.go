package schema

func init() {
	register(Releases,
		FieldSpec{Name: "FeedProvidersReleaseId", Mandatory: true, Type: String()},
		FieldSpec{Name: "ICPN", Type: String()},
		FieldSpec{Name: "ReleaseTitle", Type: String()},
		FieldSpec{Name: "ReleaseSubTitle", Type: String()},
		FieldSpec{Name: "DisplayArtistName", Type: String()},
		FieldSpec{Name: "DisplayArtistISNI", Type: String()},
		FieldSpec{Name: "LabelName", Type: String()},
		FieldSpec{Name: "ReleaseDate", Type: Date()},
		FieldSpec{Name: "OriginalDataProviderName", Type: String()},
		FieldSpec{Name: "OriginalDataProviderDPID", Type: String()},
		FieldSpec{Name: "IsDataProvidedAsReceived", Type: Boolean()},
	)

	register(ReleaseIdentifiers,
		FieldSpec{Name: "FeedProvidersReleaseProprietaryIdentifierId", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersReleaseId", Mandatory: true, Type: String()},
		FieldSpec{Name: "Identifier", Mandatory: true, Type: String()},
		FieldSpec{Name: "FeedProvidersAllocatingPartyId", Mandatory: true, Type: String()},
	)
}
