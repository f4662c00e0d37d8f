/*
Package dmp provides types and functions to work with machine-actionable
Data Management Plans as published by the RDA DMP Common Standard.

The standard has been released more than once and the revisions are not
compatible with each other: fields required by one revision are optional in
another, controlled vocabularies gain and lose tokens, and the funding
information is nested differently. Each supported revision is captured by an
immutable Bundle obtained from Select. A Bundle knows the vocabularies, the
required-field sets and the cross-field rules of its revision and exposes
entity constructors, the validation engine and the JSON codec.

The usual flow for untrusted input is:

	bundle, err := dmp.Select("1.1")
	doc, err := bundle.Parse(blob)        // strict decode, no validation
	plan, err := bundle.Validate(doc)     // aggregated violations or a ValidatedDMP
	blob, err := dmp.ToJSON(plan)

Programmatic construction goes through the bundle constructors (NewDataset,
NewDMP, ...) which reject malformed entities with the complete list of
offending fields.

Validated datasets can be projected into the DCAT vocabulary with ToDCAT.

In order to support a new release of the standard:

- Add a version_x_y.go file building the new bundle and register it in
  version.go.
- Update the vocabulary token sets where the release changed them.
- Add the published JSON schema and canonical examples under specdata/ so
  the cross-check validator and the fixture tests cover the new release.
*/
package dmp
