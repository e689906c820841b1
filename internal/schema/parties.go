package schema

func init() {
	register(Parties,
		FieldSpec{Name: "FeedProvidersPartyId", Mandatory: true, Type: String()},
		FieldSpec{Name: "ISNI", Type: String()},
		FieldSpec{Name: "IpiNameNumber", Type: String()},
		FieldSpec{Name: "CisacSocietyId", Type: String()},
		FieldSpec{Name: "DPID", Type: String()},
		FieldSpec{Name: "FullName", Mandatory: true, Type: String()},
		FieldSpec{Name: "NamesBeforeKeyName", Type: String()},
		FieldSpec{Name: "KeyName", Type: String()},
		FieldSpec{Name: "NamesAfterKeyName", Type: String()},
		FieldSpec{Name: "ContactName", Type: String()},
		FieldSpec{Name: "ContactEmail", Type: String()},
		FieldSpec{Name: "ContactPhone", Type: String()},
		FieldSpec{Name: "ContactAddress", Type: String()},
		FieldSpec{Name: "NoValidContactInformationAvailable", Type: Boolean()},
	)
}
