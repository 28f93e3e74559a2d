package settings

import "fmt"

// Format is how query results are written to stdout.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Validate checks that f is one of the supported formats.
func (f Format) Validate() error {
	switch f {
	case FormatTable, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format: %q (want %q or %q)", string(f), FormatTable, FormatJSON)
}
