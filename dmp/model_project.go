package dmp

import (
	"bytes"
	"encoding/json"
)

// Project is the research context the plan belongs to.
type Project struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Start       *Date       `json:"start,omitempty"`
	End         *Date       `json:"end,omitempty"`
	Funding     FundingList `json:"funding,omitempty"`
}

// Funding ties a project to a funder and, once known, a grant.
type Funding struct {
	FunderID      *Identifier `json:"funder_id"`
	FundingStatus string      `json:"funding_status,omitempty"`
	GrantID       *Identifier `json:"grant_id,omitempty"`
}

// FundingList carries the funding entries of a project. The wire form
// changed between revisions: 1.0 publishes a single object, 1.1 a sequence.
// Decoding accepts both; the 1.0 ruleset rejects more than one entry and
// ToJSON collapses a single entry back to the object form for that revision.
type FundingList []Funding

// UnmarshalJSON implements Unmarshaler. Strictness does not propagate into
// custom unmarshalers, so unknown properties are rejected here as well.
func (l *FundingList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	lead := bytes.TrimLeft(data, " \t\r\n")
	if len(lead) > 0 && lead[0] == '{' {
		var f Funding
		if err := dec.Decode(&f); err != nil {
			return err
		}
		*l = FundingList{f}
		return nil
	}
	return dec.Decode((*[]Funding)(l))
}
