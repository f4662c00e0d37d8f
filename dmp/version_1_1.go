package dmp

// newBundle11 builds the capability set of the 1.1 revision. Relative to
// 1.0 it requires the dataset privacy flags, drops the project timeline
// requirement, publishes funding as a sequence, accepts "rejected" as a
// funding status and lets an ethical_issues_report satisfy the ethics
// conditional on its own.
func newBundle11() *Bundle {
	required := sharedRequired()
	required[entityDataset] = fields("dataset_id", "title", "personal_data", "sensitive_data")
	required[entityProject] = fields("title")

	vocabularies := sharedVocabularies()
	vocabularies[VocabFundingStatus] = newVocabulary(VocabFundingStatus, fundingStatusTokens11...)

	return &Bundle{
		version:               Version11,
		vocabularies:          vocabularies,
		required:              required,
		fundingSequence:       true,
		ethicsReportSatisfies: true,
	}
}
