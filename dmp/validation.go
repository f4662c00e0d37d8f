package dmp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Rule identifiers carried by violations. They are part of the public
// surface so that callers can react to a class of problem without parsing
// messages.
const (
	RuleRequired            = "required"
	RuleEnumMembership      = "enum-membership"
	RuleMinItems            = "min-items"
	RuleMaxItems            = "max-items"
	RuleFormat              = "format"
	RuleConditionalRequired = "conditional-required"

	// RuleModifiedBeforeCreated is advisory and only ever reported by
	// Lint, never by Validate.
	RuleModifiedBeforeCreated = "modified-before-created"
)

// Violation is one broken rule at one address of the entity graph, e.g.
// {Path: "dataset[2].distribution[0].license[0].license_ref", Rule:
// "required"}.
type Violation struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Rule, v.Path, v.Message)
}

// path addresses a field of the entity graph using dotted names and
// bracketed sequence indexes.
type path string

func (p path) field(name string) path {
	if p == "" {
		return path(name)
	}
	return p + path("."+name)
}

func (p path) index(i int) path {
	return p + path(fmt.Sprintf("[%d]", i))
}

const doiPrefix = "https://doi.org/"

var mboxRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// checker walks an entity graph and collects every violation in document
// order. It never stops at the first finding. Cross-field rules run only
// when conditional is set; constructors leave it off so that those rules
// stay with the validation pass.
type checker struct {
	bundle      *Bundle
	conditional bool
	violations  []Violation
}

func (c *checker) report(p path, rule, format string, args ...interface{}) {
	c.violations = append(c.violations, Violation{
		Path:    string(p),
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) missing(p path) {
	c.report(p, RuleRequired, "required field is missing")
}

func (c *checker) requireString(entity string, p path, field, value string) {
	if value == "" && c.bundle.requires(entity, field) {
		c.missing(p.field(field))
	}
}

func (c *checker) checkMember(p path, vocabName, token string) {
	if c.bundle.Member(vocabName, token) {
		return
	}
	c.report(p, RuleEnumMembership, "%q is not a member of the %s vocabulary", token, vocabName)
}

func (c *checker) checkYesNoUnknown(entity string, p path, field string, value YesNoUnknown) {
	if value == "" {
		if c.bundle.requires(entity, field) {
			c.missing(p.field(field))
		}
		return
	}
	c.checkMember(p.field(field), VocabYesNoUnknown, string(value))
}

func (c *checker) checkMbox(p path, mbox string) {
	if !mboxRegexp.MatchString(mbox) {
		c.report(p, RuleFormat, "%q is not an email address", mbox)
	}
}

func (c *checker) checkURL(p path, raw string) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		c.report(p, RuleFormat, "%q is not an absolute URL", raw)
	}
}

// checkIdentifier validates an identifier against the vocabulary of its
// context. Identifiers of type "doi" must carry the resolver prefix, the
// form the standard's published examples use.
func (c *checker) checkIdentifier(p path, id *Identifier, vocabName string) {
	if id.Identifier == "" {
		c.missing(p.field("identifier"))
	}
	if id.Type == "" {
		c.missing(p.field("type"))
		return
	}
	c.checkMember(p.field("type"), vocabName, id.Type)
	if id.Type == "doi" && id.Identifier != "" && !strings.HasPrefix(id.Identifier, doiPrefix) {
		c.report(p.field("identifier"), RuleFormat, "doi identifiers must start with %q", doiPrefix)
	}
}

func (c *checker) checkDMP(d *DMP) {
	var p path

	if d.DMPID != nil {
		c.checkIdentifier(p.field("dmp_id"), d.DMPID, VocabDMPIDType)
	}
	c.requireString(entityDMP, p, "title", d.Title)
	c.requireString(entityDMP, p, "language", d.Language)
	if d.Language != "" {
		c.checkMember(p.field("language"), VocabLanguage, d.Language)
	}
	if d.Created.IsZero() && c.bundle.requires(entityDMP, "created") {
		c.missing(p.field("created"))
	}
	if d.Modified.IsZero() && c.bundle.requires(entityDMP, "modified") {
		c.missing(p.field("modified"))
	}
	c.checkYesNoUnknown(entityDMP, p, "ethical_issues_exist", d.EthicalIssuesExist)
	c.checkEthics(p, d)
	if d.Contact == nil {
		if c.bundle.requires(entityDMP, "contact") {
			c.missing(p.field("contact"))
		}
	} else {
		c.checkContact(p.field("contact"), d.Contact)
	}
	for i := range d.Contributor {
		c.checkContributor(p.field("contributor").index(i), &d.Contributor[i])
	}
	for i := range d.Cost {
		c.checkCost(p.field("cost").index(i), &d.Cost[i])
	}
	if len(d.Dataset) == 0 {
		c.report(p.field("dataset"), RuleMinItems, "at least one dataset is required")
	}
	for i := range d.Dataset {
		c.checkDataset(p.field("dataset").index(i), &d.Dataset[i])
	}
	for i := range d.Project {
		c.checkProject(p.field("project").index(i), &d.Project[i])
	}
}

// checkEthics evaluates the cross-field ethics rule. A document declaring
// ethical issues must describe them; revisions with ethicsReportSatisfies
// also accept a report reference in place of the description.
func (c *checker) checkEthics(p path, d *DMP) {
	if !c.conditional {
		return
	}
	if d.EthicalIssuesExist != YesNoUnknownYes || d.EthicalIssuesDescription != "" {
		return
	}
	if c.bundle.ethicsReportSatisfies && d.EthicalIssuesReport != "" {
		return
	}
	msg := `required when ethical_issues_exist is "yes"`
	if c.bundle.ethicsReportSatisfies {
		msg = `required when ethical_issues_exist is "yes" and no ethical_issues_report is given`
	}
	c.report(p.field("ethical_issues_description"), RuleConditionalRequired, msg)
}

func (c *checker) checkContact(p path, contact *Contact) {
	c.requireString(entityContact, p, "name", contact.Name)
	if contact.Mbox == "" {
		if c.bundle.requires(entityContact, "mbox") {
			c.missing(p.field("mbox"))
		}
	} else {
		c.checkMbox(p.field("mbox"), contact.Mbox)
	}
	if contact.ContactID == nil {
		if c.bundle.requires(entityContact, "contact_id") {
			c.missing(p.field("contact_id"))
		}
	} else {
		c.checkIdentifier(p.field("contact_id"), contact.ContactID, VocabContactIDType)
	}
}

func (c *checker) checkContributor(p path, contrib *Contributor) {
	c.requireString(entityContributor, p, "name", contrib.Name)
	if contrib.Mbox != "" {
		c.checkMbox(p.field("mbox"), contrib.Mbox)
	}
	if contrib.ContributorID != nil {
		c.checkIdentifier(p.field("contributor_id"), contrib.ContributorID, VocabContributorIDType)
	}
	if len(contrib.Role) == 0 && c.bundle.requires(entityContributor, "role") {
		c.report(p.field("role"), RuleMinItems, "at least one role is required")
	}
}

func (c *checker) checkCost(p path, cost *Cost) {
	c.requireString(entityCost, p, "title", cost.Title)
	if cost.Type != "" {
		c.checkMember(p.field("type"), VocabCostType, cost.Type)
	}
	if cost.CurrencyCode != "" {
		c.checkMember(p.field("currency_code"), VocabCurrencyCode, cost.CurrencyCode)
	}
}

func (c *checker) checkDataset(p path, ds *Dataset) {
	if ds.DatasetID == nil {
		if c.bundle.requires(entityDataset, "dataset_id") {
			c.missing(p.field("dataset_id"))
		}
	} else {
		c.checkIdentifier(p.field("dataset_id"), ds.DatasetID, VocabDatasetIDType)
	}
	c.requireString(entityDataset, p, "title", ds.Title)
	if ds.Type != "" {
		c.checkMember(p.field("type"), VocabDatasetType, ds.Type)
	}
	if ds.Language != "" {
		c.checkMember(p.field("language"), VocabLanguage, ds.Language)
	}
	c.checkYesNoUnknown(entityDataset, p, "personal_data", ds.PersonalData)
	c.checkYesNoUnknown(entityDataset, p, "sensitive_data", ds.SensitiveData)
	for i := range ds.Metadata {
		c.checkMetadata(p.field("metadata").index(i), &ds.Metadata[i])
	}
	for i := range ds.SecurityAndPrivacy {
		c.checkSecurityAndPrivacy(p.field("security_and_privacy").index(i), &ds.SecurityAndPrivacy[i])
	}
	for i := range ds.TechnicalResource {
		c.checkTechnicalResource(p.field("technical_resource").index(i), &ds.TechnicalResource[i])
	}
	for i := range ds.Distribution {
		c.checkDistribution(p.field("distribution").index(i), &ds.Distribution[i])
	}
}

func (c *checker) checkMetadata(p path, m *Metadata) {
	if m.MetadataStandardID == nil {
		if c.bundle.requires(entityMetadata, "metadata_standard_id") {
			c.missing(p.field("metadata_standard_id"))
		}
	} else {
		c.checkIdentifier(p.field("metadata_standard_id"), m.MetadataStandardID, VocabMetadataStandardIDType)
	}
	if m.Language != "" {
		c.checkMember(p.field("language"), VocabLanguage, m.Language)
	}
}

func (c *checker) checkSecurityAndPrivacy(p path, sp *SecurityAndPrivacy) {
	c.requireString(entitySecurityAndPrivacy, p, "title", sp.Title)
}

func (c *checker) checkTechnicalResource(p path, tr *TechnicalResource) {
	c.requireString(entityTechnicalResource, p, "name", tr.Name)
}

func (c *checker) checkDistribution(p path, dist *Distribution) {
	c.requireString(entityDistribution, p, "title", dist.Title)
	if dist.AccessURL != "" {
		c.checkURL(p.field("access_url"), dist.AccessURL)
	}
	if dist.DownloadURL != "" {
		c.checkURL(p.field("download_url"), dist.DownloadURL)
	}
	if dist.DataAccess != "" {
		c.checkMember(p.field("data_access"), VocabDataAccess, dist.DataAccess)
	}
	for i := range dist.License {
		c.checkLicense(p.field("license").index(i), &dist.License[i])
	}
	if dist.Host != nil {
		c.checkHost(p.field("host"), dist.Host)
	}
}

func (c *checker) checkLicense(p path, l *License) {
	if l.LicenseRef == "" {
		if c.bundle.requires(entityLicense, "license_ref") {
			c.missing(p.field("license_ref"))
		}
	} else {
		c.checkURL(p.field("license_ref"), l.LicenseRef)
	}
	if l.StartDate == nil && c.bundle.requires(entityLicense, "start_date") {
		c.missing(p.field("start_date"))
	}
}

func (c *checker) checkHost(p path, h *Host) {
	c.requireString(entityHost, p, "title", h.Title)
	if h.URL == "" {
		if c.bundle.requires(entityHost, "url") {
			c.missing(p.field("url"))
		}
	} else {
		c.checkURL(p.field("url"), h.URL)
	}
	if h.CertifiedWith != "" {
		c.checkMember(p.field("certified_with"), VocabCertifiedWith, h.CertifiedWith)
	}
	for i, system := range h.PIDSystem {
		c.checkMember(p.field("pid_system").index(i), VocabPIDSystem, system)
	}
	if h.SupportVersioning != "" {
		c.checkMember(p.field("support_versioning"), VocabYesNoUnknown, string(h.SupportVersioning))
	}
}

func (c *checker) checkProject(p path, proj *Project) {
	c.requireString(entityProject, p, "title", proj.Title)
	if proj.Start == nil && c.bundle.requires(entityProject, "start") {
		c.missing(p.field("start"))
	}
	if proj.End == nil && c.bundle.requires(entityProject, "end") {
		c.missing(p.field("end"))
	}
	if !c.bundle.fundingSequence && len(proj.Funding) > 1 {
		c.report(p.field("funding"), RuleMaxItems, "version %s allows a single funding entry", c.bundle.version)
	}
	for i := range proj.Funding {
		c.checkFunding(p.field("funding").index(i), &proj.Funding[i])
	}
}

func (c *checker) checkFunding(p path, f *Funding) {
	if f.FunderID == nil {
		if c.bundle.requires(entityFunding, "funder_id") {
			c.missing(p.field("funder_id"))
		}
	} else {
		c.checkIdentifier(p.field("funder_id"), f.FunderID, VocabFunderIDType)
	}
	if f.FundingStatus != "" {
		c.checkMember(p.field("funding_status"), VocabFundingStatus, f.FundingStatus)
	}
	if f.GrantID != nil {
		c.checkIdentifier(p.field("grant_id"), f.GrantID, VocabGrantIDType)
	}
}

// Validate checks a document against the bundle and returns the validated
// graph only when no rule is broken. A document tagged with a different
// revision fails with a VersionMismatchError before any rule runs; it is
// never reinterpreted under this bundle's rules. Untagged documents are
// adopted by the bundle on success. Violations are aggregated across the
// whole graph in document order.
func (b *Bundle) Validate(d *DMP) (*ValidatedDMP, error) {
	if d == nil {
		return nil, errors.New("document is nil")
	}
	if d.schemaVersion != "" && d.schemaVersion != b.version {
		return nil, &VersionMismatchError{Want: b.version, Got: d.schemaVersion}
	}
	c := &checker{bundle: b, conditional: true}
	c.checkDMP(d)
	if len(c.violations) > 0 {
		return nil, &ValidationError{Violations: c.violations}
	}
	d.schemaVersion = b.version
	return &ValidatedDMP{DMP: d}, nil
}

// Lint reports advisory findings the standard does not make hard rules,
// currently a modified timestamp earlier than created. Lint findings do
// not affect Validate.
func (b *Bundle) Lint(d *DMP) []Violation {
	if d == nil {
		return nil
	}
	var out []Violation
	if !d.Created.IsZero() && !d.Modified.IsZero() && d.Modified.Time().Before(d.Created.Time()) {
		out = append(out, Violation{
			Path:    "modified",
			Rule:    RuleModifiedBeforeCreated,
			Message: "modified is earlier than created",
		})
	}
	return out
}
