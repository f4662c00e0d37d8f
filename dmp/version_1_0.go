package dmp

// newBundle10 builds the capability set of the 1.0 revision: the project
// timeline is required, funding is published as a single object, and only
// a description satisfies the ethics conditional.
func newBundle10() *Bundle {
	required := sharedRequired()
	required[entityDataset] = fields("dataset_id", "title")
	required[entityProject] = fields("title", "start", "end")

	vocabularies := sharedVocabularies()
	vocabularies[VocabFundingStatus] = newVocabulary(VocabFundingStatus, fundingStatusTokens10...)

	return &Bundle{
		version:      Version10,
		vocabularies: vocabularies,
		required:     required,
	}
}
