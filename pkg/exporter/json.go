package exporter

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the nested schedule mapping (or a flat record list) as
// indented JSON, keeping Cyrillic readable instead of escaping it.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(data)
}
