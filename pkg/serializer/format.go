package serializer

// Format selects the output encoding of a serialized report.
type Format string

const (
	// FormatText is the line-oriented textual report format.
	FormatText Format = "text"

	// FormatJSON encodes the value as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML encodes the value as YAML.
	FormatYAML Format = "yaml"
)

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}
