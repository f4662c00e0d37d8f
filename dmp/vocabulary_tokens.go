package dmp

// Token sets curated from the enumerations of the published schemas. Sets
// that changed between revisions carry the revision in their name; the rest
// are shared by every bundle.

var dmpIDTypeTokens = []string{"handle", "doi", "ark", "url", "other"}

var datasetIDTypeTokens = []string{"handle", "doi", "ark", "url", "other"}

var personIDTypeTokens = []string{"orcid", "isni", "openid", "other"}

var metadataStandardIDTypeTokens = []string{"url", "other"}

var funderIDTypeTokens = []string{"fundref", "url", "other"}

var grantIDTypeTokens = []string{"url", "other"}

var yesNoUnknownTokens = []string{"yes", "no", "unknown"}

var dataAccessTokens = []string{"open", "shared", "closed"}

var certifiedWithTokens = []string{
	"din31644",
	"dini-zertifikat",
	"dsa",
	"iso16363",
	"iso16919",
	"trac",
	"wds",
	"coretrustseal",
}

var pidSystemTokens = []string{
	"ark", "arxiv", "bibcode", "doi", "ean13", "eissn", "handle", "igsn",
	"isbn", "issn", "istc", "lissn", "lsid", "pmid", "purl", "upc", "url",
	"urn", "other",
}

// funding_status gained "rejected" in 1.1.
var fundingStatusTokens10 = []string{"planned", "applied", "granted"}

var fundingStatusTokens11 = []string{"planned", "applied", "granted", "rejected"}

var costTypeTokens = []string{
	"staff", "equipment", "storage", "preservation", "licensing", "other",
}

// DataCite resourceTypeGeneral tokens, lowercased the way the published
// examples use them.
var datasetTypeTokens = []string{
	"audiovisual", "collection", "datapaper", "dataset", "event", "image",
	"interactiveresource", "model", "physicalobject", "service", "software",
	"sound", "text", "workflow", "other",
}

// ISO 639-3 language codes. The published schema enumerates the full
// registry; this is the subset the validator ships with.
var languageTokens = []string{
	"ara", "bel", "ben", "bul", "cat", "ces", "cym", "dan", "deu", "ell",
	"eng", "epo", "est", "eus", "fas", "fin", "fra", "gle", "glg", "heb",
	"hin", "hrv", "hun", "hye", "ind", "isl", "ita", "jpn", "kat", "kor",
	"lat", "lav", "lit", "mkd", "mlt", "nld", "nno", "nob", "nor", "pol",
	"por", "ron", "rus", "slk", "slv", "spa", "sqi", "srp", "swa", "swe",
	"tam", "tel", "tha", "tur", "ukr", "und", "urd", "vie", "zho", "zul",
}

// ISO 4217 currency codes, same curation policy as languageTokens.
var currencyTokens = []string{
	"AUD", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP", "HKD",
	"HUF", "IDR", "ILS", "INR", "JPY", "KRW", "MXN", "MYR", "NOK", "NZD",
	"PHP", "PLN", "RON", "RUB", "SEK", "SGD", "THB", "TRY", "USD", "ZAR",
}

// sharedVocabularies returns the vocabularies that are identical in every
// supported revision. Each bundle gets its own copy so that bundles never
// share mutable state.
func sharedVocabularies() map[string]Vocabulary {
	return map[string]Vocabulary{
		VocabDMPIDType:              newVocabulary(VocabDMPIDType, dmpIDTypeTokens...),
		VocabDatasetIDType:          newVocabulary(VocabDatasetIDType, datasetIDTypeTokens...),
		VocabContactIDType:          newVocabulary(VocabContactIDType, personIDTypeTokens...),
		VocabContributorIDType:      newVocabulary(VocabContributorIDType, personIDTypeTokens...),
		VocabMetadataStandardIDType: newVocabulary(VocabMetadataStandardIDType, metadataStandardIDTypeTokens...),
		VocabFunderIDType:           newVocabulary(VocabFunderIDType, funderIDTypeTokens...),
		VocabGrantIDType:            newVocabulary(VocabGrantIDType, grantIDTypeTokens...),
		VocabYesNoUnknown:           newVocabulary(VocabYesNoUnknown, yesNoUnknownTokens...),
		VocabDataAccess:             newVocabulary(VocabDataAccess, dataAccessTokens...),
		VocabCertifiedWith:          newVocabulary(VocabCertifiedWith, certifiedWithTokens...),
		VocabPIDSystem:              newVocabulary(VocabPIDSystem, pidSystemTokens...),
		VocabCostType:               newVocabulary(VocabCostType, costTypeTokens...),
		VocabDatasetType:            newVocabulary(VocabDatasetType, datasetTypeTokens...),
		VocabLanguage:               newVocabulary(VocabLanguage, languageTokens...),
		VocabCurrencyCode:           newVocabulary(VocabCurrencyCode, currencyTokens...),
	}
}
