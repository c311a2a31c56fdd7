package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Param is one declared parameter of a tool.
type Param struct {
	Name        string
	Type        string // string, int or float
	Description string
	Required    bool
}

// Params is the ordered parameter list of a tool schema. It serializes as a
// JSON object keyed by parameter name, in declaration order, matching the shape
// tools are delivered in. A plain map would lose the order.
type Params []Param

type paramSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// MarshalJSON writes the parameters as an object, preserving declaration order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(param.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		spec, err := json.Marshal(paramSpec{
			Type:        param.Type,
			Description: param.Description,
			Required:    param.Required,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(spec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a parameter object back, keeping the key order it was
// written in. json.Unmarshal into a map would shuffle it.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parameters: expected object, got %v", tok)
	}

	out := Params{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("parameters: expected key, got %v", tok)
		}
		var spec paramSpec
		if err := dec.Decode(&spec); err != nil {
			return fmt.Errorf("parameters: %s: %w", name, err)
		}
		out = append(out, Param{
			Name:        name,
			Type:        spec.Type,
			Description: spec.Description,
			Required:    spec.Required,
		})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

// Get returns the parameter named name, if declared.
func (p Params) Get(name string) (Param, bool) {
	for _, param := range p {
		if param.Name == name {
			return param, true
		}
	}
	return Param{}, false
}

// ToolSchema declares a callable capability: its name, what it does and which
// parameters it takes. The catalog defines these once at process start; records
// carry frozen snapshots.
type ToolSchema struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Params `json:"parameters"`
}
