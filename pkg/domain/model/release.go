package model

import "encoding/json"

// ReleaseDefinition represents one entry of the "list release definitions"
// endpoint response
type ReleaseDefinition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReleaseDefinitionDetail represents the full release definition fetched by
// ID, including its ordered list of environments
type ReleaseDefinitionDetail struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Environments []Environment `json:"environments"`
}

// Environment is a single stage of a release definition. The environment
// schema is service-defined and changes between API versions, so the whole
// JSON document is kept verbatim; only the name is extracted, for display
// and temp file naming.
type Environment struct {
	Name string
	Raw  json.RawMessage
}

// UnmarshalJSON keeps the raw environment document and peeks the name field
func (x *Environment) UnmarshalJSON(data []byte) error {
	var peek struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return err
	}
	x.Name = peek.Name
	x.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the environment document exactly as received
func (x Environment) MarshalJSON() ([]byte, error) {
	if len(x.Raw) == 0 {
		return json.Marshal(struct {
			Name string `json:"name"`
		}{Name: x.Name})
	}
	return x.Raw, nil
}

// CompareRequest holds the per-run parameters of the compare use case
type CompareRequest struct {
	ReleaseDefinition string // Release definition name to look up
	CompareExe        string // Explicit comparison tool path, empty to probe
	Indent            int    // JSON indent width for the temp files
	DeleteTempFiles   bool   // Remove the temp files after the tool exits
}
