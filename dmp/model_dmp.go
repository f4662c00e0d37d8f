package dmp

// DMP is the root of a machine-actionable Data Management Plan. Field order
// follows the published examples so that encoded documents read like the
// canonical ones.
//
// A DMP carries the schema revision it was built or parsed under in an
// unexported tag; Validate refuses to re-interpret a document under a
// different revision.
type DMP struct {
	DMPID                    *Identifier   `json:"dmp_id,omitempty"`
	Title                    string        `json:"title"`
	Description              string        `json:"description,omitempty"`
	Language                 string        `json:"language"`
	Created                  Timestamp     `json:"created"`
	Modified                 Timestamp     `json:"modified"`
	EthicalIssuesExist       YesNoUnknown  `json:"ethical_issues_exist"`
	EthicalIssuesDescription string        `json:"ethical_issues_description,omitempty"`
	EthicalIssuesReport      string        `json:"ethical_issues_report,omitempty"`
	Contact                  *Contact      `json:"contact"`
	Contributor              []Contributor `json:"contributor,omitempty"`
	Cost                     []Cost        `json:"cost,omitempty"`
	Dataset                  []Dataset     `json:"dataset"`
	Project                  []Project     `json:"project,omitempty"`

	// schemaVersion tags the revision the plan was constructed or parsed
	// against. Empty for hand-assembled values until they pass Validate.
	schemaVersion string
}

// SchemaVersion returns the revision tag of the plan, or the empty string
// for hand-assembled documents that have not been validated yet.
func (d *DMP) SchemaVersion() string {
	return d.schemaVersion
}

// ValidatedDMP is a plan that passed the full validation pass of a bundle.
// It is produced exclusively by (*Bundle).Validate; every value carries a
// revision tag and honours that revision's invariants.
type ValidatedDMP struct {
	*DMP
}
