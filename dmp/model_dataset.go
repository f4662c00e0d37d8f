package dmp

// Dataset is the data the plan manages. At least one per DMP.
type Dataset struct {
	DatasetID             *Identifier          `json:"dataset_id"`
	Title                 string               `json:"title"`
	Description           string               `json:"description,omitempty"`
	Type                  string               `json:"type,omitempty"`
	Keyword               []string             `json:"keyword,omitempty"`
	Language              string               `json:"language,omitempty"`
	Issued                *Date                `json:"issued,omitempty"`
	PersonalData          YesNoUnknown         `json:"personal_data,omitempty"`
	SensitiveData         YesNoUnknown         `json:"sensitive_data,omitempty"`
	PreservationStatement string               `json:"preservation_statement,omitempty"`
	DataQualityAssurance  []string             `json:"data_quality_assurance,omitempty"`
	Metadata              []Metadata           `json:"metadata,omitempty"`
	SecurityAndPrivacy    []SecurityAndPrivacy `json:"security_and_privacy,omitempty"`
	TechnicalResource     []TechnicalResource  `json:"technical_resource,omitempty"`
	Distribution          []Distribution       `json:"distribution,omitempty"`
}

// Metadata points at a metadata standard the dataset follows.
type Metadata struct {
	MetadataStandardID *Identifier `json:"metadata_standard_id"`
	Description        string      `json:"description,omitempty"`
	Language           string      `json:"language,omitempty"`
}

// SecurityAndPrivacy documents a measure taken to protect the data.
type SecurityAndPrivacy struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TechnicalResource is equipment or infrastructure needed to produce or use
// the dataset.
type TechnicalResource struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
