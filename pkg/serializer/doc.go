// Package serializer writes validation reports and directive tables to
// files, stdout, or HTTP responses in text, JSON, or YAML form.
//
// The text format delegates to values implementing TextWriter; values
// without a textual form, and unknown formats, fall back to JSON.
package serializer
