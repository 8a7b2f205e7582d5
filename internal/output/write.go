package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormat reports whether f names a registered output format.
func ValidFormat(f string) bool { return f == FormatText || f == FormatJSON }

// Write renders rows in the requested format. Text is tab-separated with an
// optional header line; JSON is a single array.
func Write[T Row](w io.Writer, format string, rows []T, header bool) error {
	switch format {
	case FormatText:
		return writeText(w, rows, header)
	case FormatJSON:
		return writeJSON(w, rows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText[T Row](w io.Writer, rows []T, header bool) error {
	if header {
		var zero T
		if _, err := fmt.Fprintln(w, strings.Join(zero.Header(), "\t")); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(r.Fields(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON[T Row](w io.Writer, rows []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if rows == nil {
		rows = []T{}
	}
	return enc.Encode(rows)
}
