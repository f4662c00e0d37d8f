package dmp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope reads documents superficially only to extract the core
// attributes. It enables users to look up enough information to pick a
// schema revision or log context while avoiding other potential decoding
// issues that we prefer to defer to Parse.
type Envelope struct {
	DMP        json.RawMessage `json:"dmp"`
	Attributes Attributes      `json:"-"`
}

// Attributes are the top-level properties lifted off the wrapped document
// without decoding the full graph. Timestamps are kept as raw strings;
// stricter decoding happens in Parse.
type Attributes struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

// Open returns the Envelope of a document stream. The standard publishes
// documents wrapped in a single "dmp" property; streams without it are
// rejected as malformed.
func Open(stream []byte) (*Envelope, error) {
	e := Envelope{Attributes: Attributes{}}

	if err := json.Unmarshal(stream, &e); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}

	if len(e.DMP) == 0 || bytes.Equal(e.DMP, []byte("null")) {
		return nil, &MalformedJSONError{Err: fmt.Errorf(`"dmp" property is empty or missing`)}
	}

	if err := e.inspect(); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}

	return &e, nil
}

// inspect extracts the main attributes (title, language, timestamps).
func (e *Envelope) inspect() error {
	return json.Unmarshal(e.DMP, &e.Attributes)
}
