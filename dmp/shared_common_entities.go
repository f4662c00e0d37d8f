package dmp

// YesNoUnknown is the three-valued token used by the standard for flags such
// as personal_data, sensitive_data or ethical_issues_exist. The permitted
// tokens live in the yes_no_unknown vocabulary of each bundle.
type YesNoUnknown string

const (
	YesNoUnknownYes     YesNoUnknown = "yes"
	YesNoUnknownNo      YesNoUnknown = "no"
	YesNoUnknownUnknown YesNoUnknown = "unknown"
)

func (v YesNoUnknown) String() string {
	return string(v)
}

// Identifier is a persistent identifier together with the system it belongs
// to. The permitted type tokens depend on the context: a dataset_id accepts
// different systems than a contact_id. The context is captured by the
// vocabulary name the containing entity associates with the field, so the
// type is kept as a plain token here and policed during validation.
type Identifier struct {
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
}

// Contact is the person responsible for the plan. Exactly one per DMP.
type Contact struct {
	Name      string      `json:"name"`
	Mbox      string      `json:"mbox"`
	ContactID *Identifier `json:"contact_id"`
}

// Contributor is any other party involved in the plan.
type Contributor struct {
	Name          string      `json:"name"`
	Mbox          string      `json:"mbox,omitempty"`
	ContributorID *Identifier `json:"contributor_id,omitempty"`
	Role          []string    `json:"role"`
}

// Cost describes money spent on data management.
type Cost struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Type         string   `json:"type,omitempty"`
	CurrencyCode string   `json:"currency_code,omitempty"`
	Value        *float64 `json:"value,omitempty"`
}
