package scanner

import (
	"fmt"
	"io"
)

// String renders the outcome in the per-line report format:
// "{line:>4} OK: {text}" on success, "{line:>4} ERROR: {message}" on
// failure.
func (o Outcome) String() string {
	if o.OK {
		return fmt.Sprintf("%4d OK: %s", o.Line, o.Text)
	}
	return fmt.Sprintf("%4d ERROR: %s", o.Line, o.Message)
}

// WriteText writes the line-oriented textual report, one outcome per
// line, implementing the serializer text format.
func (r *Report) WriteText(w io.Writer) error {
	for _, o := range r.Outcomes {
		if _, err := fmt.Fprintln(w, o.String()); err != nil {
			return err
		}
	}
	return nil
}
