// Package output - JSON renderer
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders a comparison as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the comparison as JSON
func (f *JSONFormatter) Render(w io.Writer, result *ComparisonResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
