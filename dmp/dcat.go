package dmp

// DCAT terms used by the dataset export. The constants let consumers of
// the JSON-LD output address properties without repeating the IRIs.
const (
	ClassDcatDataset      = "http://www.w3.org/ns/dcat#Dataset"
	ClassDcatDistribution = "http://www.w3.org/ns/dcat#Distribution"

	PropDctTitle         = "http://purl.org/dc/terms/title"
	PropDctIdentifier    = "http://purl.org/dc/terms/identifier"
	PropDctDescription   = "http://purl.org/dc/terms/description"
	PropDctLanguage      = "http://purl.org/dc/terms/language"
	PropDctIssued        = "http://purl.org/dc/terms/issued"
	PropDctType          = "http://purl.org/dc/terms/type"
	PropDctFormat        = "http://purl.org/dc/terms/format"
	PropDctLicense       = "http://purl.org/dc/terms/license"
	PropDcSubject        = "http://purl.org/dc/elements/1.1/subject"
	PropDcatDistribution = "http://www.w3.org/ns/dcat#distribution"
	PropDcatAccessURL    = "http://www.w3.org/ns/dcat#accessURL"
	PropDcatDownloadURL  = "http://www.w3.org/ns/dcat#downloadURL"
	PropDcatByteSize     = "http://www.w3.org/ns/dcat#byteSize"
)

// langUndetermined is the BCP 47 tag for text whose language is unknown.
const langUndetermined = "und"

// DcatLiteral is a JSON-LD literal, optionally language-tagged.
type DcatLiteral struct {
	Value    interface{} `json:"@value"`
	Language string      `json:"@language,omitempty"`
}

// DcatRef is a JSON-LD node reference.
type DcatRef struct {
	ID string `json:"@id"`
}

// DcatDataset is the JSON-LD expanded form of a dataset under the DCAT
// vocabulary.
type DcatDataset struct {
	ID           string             `json:"@id,omitempty"`
	Type         []string           `json:"@type"`
	Title        []DcatLiteral      `json:"http://purl.org/dc/terms/title"`
	Identifier   []DcatLiteral      `json:"http://purl.org/dc/terms/identifier,omitempty"`
	Description  []DcatLiteral      `json:"http://purl.org/dc/terms/description,omitempty"`
	Subject      []DcatLiteral      `json:"http://purl.org/dc/elements/1.1/subject,omitempty"`
	Language     []DcatLiteral      `json:"http://purl.org/dc/terms/language,omitempty"`
	Issued       []DcatLiteral      `json:"http://purl.org/dc/terms/issued,omitempty"`
	DatasetType  []DcatLiteral      `json:"http://purl.org/dc/terms/type,omitempty"`
	Distribution []DcatDistribution `json:"http://www.w3.org/ns/dcat#distribution,omitempty"`
}

// DcatDistribution is the JSON-LD expanded form of a distribution.
type DcatDistribution struct {
	Type        []string      `json:"@type"`
	Title       []DcatLiteral `json:"http://purl.org/dc/terms/title"`
	Description []DcatLiteral `json:"http://purl.org/dc/terms/description,omitempty"`
	AccessURL   []DcatRef     `json:"http://www.w3.org/ns/dcat#accessURL,omitempty"`
	DownloadURL []DcatRef     `json:"http://www.w3.org/ns/dcat#downloadURL,omitempty"`
	ByteSize    []DcatLiteral `json:"http://www.w3.org/ns/dcat#byteSize,omitempty"`
	Format      []DcatLiteral `json:"http://purl.org/dc/terms/format,omitempty"`
	License     []DcatRef     `json:"http://purl.org/dc/terms/license,omitempty"`
}

// ToDCAT maps a dataset onto the DCAT vocabulary. The mapping is pure and
// read-only: dataset fields without a DCAT counterpart are dropped, never
// invented, and nothing round-trips back into document form. Human-readable
// text is tagged with the dataset language, or "und" when no language is
// recorded.
func ToDCAT(ds *Dataset) *DcatDataset {
	lang := ds.Language
	if lang == "" {
		lang = langUndetermined
	}

	out := &DcatDataset{
		Type:  []string{ClassDcatDataset},
		Title: []DcatLiteral{{Value: ds.Title, Language: lang}},
	}
	if ds.DatasetID != nil {
		out.ID = ds.DatasetID.Identifier
		out.Identifier = []DcatLiteral{{Value: ds.DatasetID.Identifier}}
	}
	if ds.Description != "" {
		out.Description = []DcatLiteral{{Value: ds.Description, Language: lang}}
	}
	for _, kw := range ds.Keyword {
		out.Subject = append(out.Subject, DcatLiteral{Value: kw, Language: lang})
	}
	if ds.Language != "" {
		out.Language = []DcatLiteral{{Value: ds.Language}}
	}
	if ds.Issued != nil {
		out.Issued = []DcatLiteral{{Value: ds.Issued.String()}}
	}
	if ds.Type != "" {
		out.DatasetType = []DcatLiteral{{Value: ds.Type}}
	}
	for i := range ds.Distribution {
		out.Distribution = append(out.Distribution, toDcatDistribution(&ds.Distribution[i], lang))
	}
	return out
}

func toDcatDistribution(dist *Distribution, lang string) DcatDistribution {
	out := DcatDistribution{
		Type:  []string{ClassDcatDistribution},
		Title: []DcatLiteral{{Value: dist.Title, Language: lang}},
	}
	if dist.Description != "" {
		out.Description = []DcatLiteral{{Value: dist.Description, Language: lang}}
	}
	if dist.AccessURL != "" {
		out.AccessURL = []DcatRef{{ID: dist.AccessURL}}
	}
	if dist.DownloadURL != "" {
		out.DownloadURL = []DcatRef{{ID: dist.DownloadURL}}
	}
	if dist.ByteSize != nil {
		out.ByteSize = []DcatLiteral{{Value: *dist.ByteSize}}
	}
	for _, f := range dist.Format {
		out.Format = append(out.Format, DcatLiteral{Value: f})
	}
	for _, l := range dist.License {
		if l.LicenseRef != "" {
			out.License = append(out.License, DcatRef{ID: l.LicenseRef})
		}
	}
	return out
}
