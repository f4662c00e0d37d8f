package dmp

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// document is the wire wrapper: the standard publishes every plan inside a
// single top-level "dmp" property.
type document struct {
	DMP *DMP `json:"dmp"`
}

// wireDocument is the marshalling counterpart of document. Its payload is
// left open so that per-revision wire forms can be swapped in.
type wireDocument struct {
	DMP interface{} `json:"dmp"`
}

// Parse decodes a wrapped document under the given schema revision. See
// Bundle.Parse for the decoding rules.
func Parse(data []byte, version string) (*DMP, error) {
	b, err := Select(version)
	if err != nil {
		return nil, err
	}
	return b.Parse(data)
}

// Parse decodes a wrapped document and tags it with the bundle's revision.
// Decoding is strict: unknown properties, JSON type mismatches and broken
// syntax are all rejected as malformed input. The result is an unvalidated
// graph meant to be handed to Validate.
func (b *Bundle) Parse(data []byte) (*DMP, error) {
	doc := document{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}
	if doc.DMP == nil {
		return nil, &MalformedJSONError{Err: errors.New(`"dmp" property is empty or missing`)}
	}
	doc.DMP.schemaVersion = b.version
	return doc.DMP, nil
}

// ToJSON serializes a validated document into the wrapped wire form,
// omitting absent optional fields. Field order follows the standard's
// published examples. Revision 1.0 publishes project funding as a single
// object rather than a sequence.
func ToJSON(v *ValidatedDMP) ([]byte, error) {
	if v == nil || v.DMP == nil {
		return nil, errors.New("document is nil")
	}
	b, ok := bundles[v.schemaVersion]
	if !ok {
		return nil, &UnknownVersionError{Version: v.schemaVersion, Supported: Versions()}
	}
	var payload interface{} = v.DMP
	if !b.fundingSequence {
		payload = wire10(v.DMP)
	}
	return json.MarshalIndent(wireDocument{DMP: payload}, "", "  ")
}

// projectWire10 shadows the funding sequence of a project with the single
// object form of revision 1.0. Embedding keeps every other field in place.
type projectWire10 struct {
	Project
	Funding *Funding `json:"funding,omitempty"`
}

// dmpWire10 swaps the project sequence for its 1.0 wire form.
type dmpWire10 struct {
	*DMP
	Project []projectWire10 `json:"project,omitempty"`
}

func wire10(d *DMP) *dmpWire10 {
	out := &dmpWire10{DMP: d}
	for _, proj := range d.Project {
		w := projectWire10{Project: proj}
		if len(proj.Funding) > 0 {
			// Validation caps 1.0 funding at one entry.
			f := proj.Funding[0]
			w.Funding = &f
		}
		out.Project = append(out.Project, w)
	}
	return out
}
