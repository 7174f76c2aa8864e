// Package jsonutil provides JSON helpers for the xanalytics CLI output.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent marshals v as two-space indented JSON. HTML escaping is disabled
// so post texts such as "tabs > spaces" stay readable.
func Indent(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.String(), nil
}

// CompactJSON minifies a JSON string by removing whitespace.
// Returns the original string if it's not valid JSON.
func CompactJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
