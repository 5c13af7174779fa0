package formatter

import (
	"bytes"
	"encoding/json"
)

type responseBuilder struct {
	indent string
}

// NewResponseBuilder creates a builder; an empty indent produces compact output
func NewResponseBuilder(indent string) *responseBuilder {
	return &responseBuilder{indent: indent}
}

// BuildJSON serializes responses as a JSON array
func (rb *responseBuilder) BuildJSON(responses []Response) ([]byte, error) {
	if responses == nil {
		responses = []Response{}
	}
	return rb.marshal(responses)
}

// BuildOne serializes a single response
func (rb *responseBuilder) BuildOne(res Response) ([]byte, error) {
	return rb.marshal(res)
}

// marshal keeps <, > and & literal so SVG maps stay readable
func (rb *responseBuilder) marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", rb.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
