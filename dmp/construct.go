package dmp

import (
	"time"

	"github.com/google/uuid"
)

// Constructors take an entity by value, check it against the bundle and
// hand back a pointer to a private copy. Construction is atomic: either
// every offending field is reported through a SchemaViolationError, or the
// entity is accepted as a whole. Cross-field document rules are not
// evaluated here; they belong to Validate.

func (b *Bundle) construct(entity string, check func(c *checker)) error {
	c := &checker{bundle: b}
	check(c)
	if len(c.violations) > 0 {
		return &SchemaViolationError{Entity: entity, Violations: c.violations}
	}
	return nil
}

// NewContact builds a validated contact.
func (b *Bundle) NewContact(contact Contact) (*Contact, error) {
	err := b.construct(entityContact, func(c *checker) { c.checkContact("", &contact) })
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// NewContributor builds a validated contributor.
func (b *Bundle) NewContributor(contrib Contributor) (*Contributor, error) {
	err := b.construct(entityContributor, func(c *checker) { c.checkContributor("", &contrib) })
	if err != nil {
		return nil, err
	}
	return &contrib, nil
}

// NewCost builds a validated cost item.
func (b *Bundle) NewCost(cost Cost) (*Cost, error) {
	err := b.construct(entityCost, func(c *checker) { c.checkCost("", &cost) })
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// NewTechnicalResource builds a validated technical resource.
func (b *Bundle) NewTechnicalResource(tr TechnicalResource) (*TechnicalResource, error) {
	err := b.construct(entityTechnicalResource, func(c *checker) { c.checkTechnicalResource("", &tr) })
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// NewDistribution builds a validated distribution, including its licenses
// and host.
func (b *Bundle) NewDistribution(dist Distribution) (*Distribution, error) {
	err := b.construct(entityDistribution, func(c *checker) { c.checkDistribution("", &dist) })
	if err != nil {
		return nil, err
	}
	return &dist, nil
}

// NewDataset builds a validated dataset, including every nested entity.
// Requiredness follows the bundle: the privacy flags are mandatory from
// revision 1.1 on.
func (b *Bundle) NewDataset(ds Dataset) (*Dataset, error) {
	err := b.construct(entityDataset, func(c *checker) { c.checkDataset("", &ds) })
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

// NewProject builds a validated project. Revision 1.0 requires the start
// and end dates and allows a single funding entry.
func (b *Bundle) NewProject(proj Project) (*Project, error) {
	err := b.construct(entityProject, func(c *checker) { c.checkProject("", &proj) })
	if err != nil {
		return nil, err
	}
	return &proj, nil
}

// NewDMP builds a whole document, checking the full graph the way Validate
// does except for cross-field rules. The returned document carries the
// bundle's version tag. Documents already tagged with another revision are
// rejected with a VersionMismatchError.
func (b *Bundle) NewDMP(d DMP) (*DMP, error) {
	if d.schemaVersion != "" && d.schemaVersion != b.version {
		return nil, &VersionMismatchError{Want: b.version, Got: d.schemaVersion}
	}
	if err := b.construct(entityDMP, func(c *checker) { c.checkDMP(&d) }); err != nil {
		return nil, err
	}
	d.schemaVersion = b.version
	return &d, nil
}

// New returns a minimal document that already satisfies the bundle, meant
// as a starting point for programmatic authoring. Identity fields are
// fresh UUID URNs and the content fields carry placeholders the caller is
// expected to replace.
func (b *Bundle) New() *DMP {
	now := NewTimestamp(time.Now().UTC().Truncate(time.Second))
	return &DMP{
		DMPID:              &Identifier{Identifier: uuid.New().URN(), Type: "other"},
		Title:              "Untitled data management plan",
		Language:           "eng",
		Created:            now,
		Modified:           now,
		EthicalIssuesExist: YesNoUnknownUnknown,
		Contact: &Contact{
			Name:      "Unnamed contact",
			Mbox:      "contact@example.com",
			ContactID: &Identifier{Identifier: uuid.New().URN(), Type: "other"},
		},
		Dataset: []Dataset{
			{
				DatasetID:     &Identifier{Identifier: uuid.New().URN(), Type: "other"},
				Title:         "Untitled dataset",
				PersonalData:  YesNoUnknownUnknown,
				SensitiveData: YesNoUnknownUnknown,
			},
		},
		schemaVersion: b.version,
	}
}
