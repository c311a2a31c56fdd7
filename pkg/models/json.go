package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EncodeJSON marshals v without HTML escaping, so Kazakh text and the <type>
// placeholders survive storage and export byte-for-byte. indent is applied when
// non-empty.
func EncodeJSON(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	// Encode appends a trailing newline.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
