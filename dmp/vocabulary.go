package dmp

import "sort"

// Vocabulary names. Identifier vocabularies are named after the field whose
// type token they police because the permitted systems differ per context.
const (
	VocabDMPIDType              = "dmp_id.type"
	VocabDatasetIDType          = "dataset_id.type"
	VocabContactIDType          = "contact_id.type"
	VocabContributorIDType      = "contributor_id.type"
	VocabMetadataStandardIDType = "metadata_standard_id.type"
	VocabFunderIDType           = "funder_id.type"
	VocabGrantIDType            = "grant_id.type"
	VocabYesNoUnknown           = "yes_no_unknown"
	VocabDataAccess             = "data_access"
	VocabCertifiedWith          = "certified_with"
	VocabPIDSystem              = "pid_system"
	VocabFundingStatus          = "funding_status"
	VocabCostType               = "cost.type"
	VocabDatasetType            = "dataset.type"
	VocabLanguage               = "language"
	VocabCurrencyCode           = "currency_code"
)

// Vocabulary is a closed set of tokens permitted for one enumerated field of
// one schema revision. Membership is exact: unknown tokens are rejected by
// the validation engine, never coerced or fuzzily matched.
type Vocabulary struct {
	name   string
	tokens map[string]struct{}
}

func newVocabulary(name string, tokens ...string) Vocabulary {
	v := Vocabulary{name: name, tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		v.tokens[t] = struct{}{}
	}
	return v
}

// Name returns the vocabulary name.
func (v Vocabulary) Name() string {
	return v.name
}

// Contains reports whether token is a member of the vocabulary.
func (v Vocabulary) Contains(token string) bool {
	_, ok := v.tokens[token]
	return ok
}

// Tokens returns the permitted tokens in lexical order.
func (v Vocabulary) Tokens() []string {
	out := make([]string, 0, len(v.tokens))
	for t := range v.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Vocabulary returns the named vocabulary of the bundle.
func (b *Bundle) Vocabulary(name string) (Vocabulary, bool) {
	v, ok := b.vocabularies[name]
	return v, ok
}

// Member reports whether token belongs to the named vocabulary of the
// bundle. Unknown vocabulary names report false.
func (b *Bundle) Member(name, token string) bool {
	v, ok := b.vocabularies[name]
	if !ok {
		return false
	}
	return v.Contains(token)
}
