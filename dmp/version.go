package dmp

import (
	"fmt"
	"sort"
	"sync"
)

// Supported revisions of the RDA DMP Common Standard.
const (
	Version10 = "1.0"
	Version11 = "1.1"

	// DefaultVersion is the revision used when the caller does not pick
	// one. It tracks the latest supported release.
	DefaultVersion = Version11
)

// Bundle is the immutable capability set of one schema revision: its
// vocabularies, required-field sets, cross-field rules and wire forms.
// Bundles are built once at package initialization, never mutated
// afterwards, and safe to share across concurrent readers. Entities keep
// working under the bundle that produced them even after another bundle is
// selected.
type Bundle struct {
	version      string
	vocabularies map[string]Vocabulary
	required     map[string]fieldSet

	// fundingSequence is set when the revision publishes project funding
	// as a sequence; 1.0 publishes a single object and allows at most one
	// entry.
	fundingSequence bool

	// ethicsReportSatisfies is set when an ethical_issues_report alone
	// satisfies the ethics conditional, a relaxation introduced in 1.1.
	ethicsReportSatisfies bool
}

// Version returns the revision string of the bundle.
func (b *Bundle) Version() string {
	return b.version
}

// requires reports whether the bundle marks a field of an entity required.
func (b *Bundle) requires(entity, field string) bool {
	return b.required[entity].has(field)
}

// fieldSet is the set of required field names of one entity.
type fieldSet map[string]struct{}

func fields(names ...string) fieldSet {
	s := make(fieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s fieldSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// Entity keys of the required-field tables.
const (
	entityDMP                = "dmp"
	entityContact            = "contact"
	entityContributor        = "contributor"
	entityCost               = "cost"
	entityDataset            = "dataset"
	entityMetadata           = "metadata"
	entitySecurityAndPrivacy = "security_and_privacy"
	entityTechnicalResource  = "technical_resource"
	entityDistribution       = "distribution"
	entityLicense            = "license"
	entityHost               = "host"
	entityProject            = "project"
	entityFunding            = "funding"
)

// sharedRequired builds the required-field tables common to every
// revision. Per-version constructors add the dataset and project rows,
// which are the ones the revisions disagree on.
func sharedRequired() map[string]fieldSet {
	return map[string]fieldSet{
		entityDMP:                fields("title", "language", "created", "modified", "ethical_issues_exist", "contact", "dataset"),
		entityContact:            fields("name", "mbox", "contact_id"),
		entityContributor:        fields("name", "role"),
		entityCost:               fields("title"),
		entityMetadata:           fields("metadata_standard_id"),
		entitySecurityAndPrivacy: fields("title"),
		entityTechnicalResource:  fields("name"),
		entityDistribution:       fields("title"),
		entityLicense:            fields("license_ref", "start_date"),
		entityHost:               fields("title", "url"),
		entityFunding:            fields("funder_id"),
	}
}

// bundles is the registry of supported revisions.
var bundles = map[string]*Bundle{
	Version10: newBundle10(),
	Version11: newBundle11(),
}

// Select returns the bundle of a schema revision. Unknown revisions fail
// with an UnknownVersionError listing the supported ones.
func Select(version string) (*Bundle, error) {
	b, ok := bundles[version]
	if !ok {
		return nil, &UnknownVersionError{Version: version, Supported: Versions()}
	}
	return b, nil
}

// Versions returns the supported revisions in ascending order.
func Versions() []string {
	out := make([]string, 0, len(bundles))
	for v := range bundles {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

var (
	defaultMu      sync.Mutex
	defaultVersion string
)

// SetDefault pins the process-wide default revision. It may be called once,
// before Default is first read; later calls naming a different revision
// fail. Callers that need several revisions side by side should hold their
// own bundle references instead of relying on the default.
func SetDefault(version string) error {
	b, err := Select(version)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultVersion != "" && defaultVersion != b.version {
		return fmt.Errorf("default schema version already pinned to %s", defaultVersion)
	}
	defaultVersion = b.version
	return nil
}

// Default returns the process-wide default bundle. The first read pins the
// default to DefaultVersion unless SetDefault ran before.
func Default() *Bundle {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultVersion == "" {
		defaultVersion = DefaultVersion
	}
	return bundles[defaultVersion]
}
