package dmp

// Distribution is a concrete way to obtain a dataset: a download, a landing
// page, a deposit in a repository.
type Distribution struct {
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	AccessURL      string    `json:"access_url,omitempty"`
	DownloadURL    string    `json:"download_url,omitempty"`
	Format         []string  `json:"format,omitempty"`
	ByteSize       *int64    `json:"byte_size,omitempty"`
	DataAccess     string    `json:"data_access,omitempty"`
	AvailableUntil *Date     `json:"available_until,omitempty"`
	License        []License `json:"license,omitempty"`
	Host           *Host     `json:"host,omitempty"`
}

// License attaches licensing terms to a distribution from a given date on.
type License struct {
	LicenseRef string `json:"license_ref"`
	StartDate  *Date  `json:"start_date"`
}

// Host is the repository or service where a distribution lives.
type Host struct {
	Title             string       `json:"title"`
	URL               string       `json:"url"`
	Description       string       `json:"description,omitempty"`
	Availability      string       `json:"availability,omitempty"`
	BackupFrequency   string       `json:"backup_frequency,omitempty"`
	BackupType        string       `json:"backup_type,omitempty"`
	CertifiedWith     string       `json:"certified_with,omitempty"`
	GeoLocation       string       `json:"geo_location,omitempty"`
	PIDSystem         []string     `json:"pid_system,omitempty"`
	StorageType       string       `json:"storage_type,omitempty"`
	SupportVersioning YesNoUnknown `json:"support_versioning,omitempty"`
}
