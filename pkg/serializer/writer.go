/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TextWriter is implemented by values that know their own line-oriented
// textual form, used by the text format.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Writer serializes values to an output stream in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a Writer targeting out. An unknown format falls back
// to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout creates a Writer targeting the given file path,
// or stdout when the path is empty or "-". The file is created lazily on
// the first Serialize call.
func NewFileWriterOrStdout(format Format, output string) *Writer {
	w := NewWriter(format, nil)
	if output == "" || output == StdoutURI {
		w.out = os.Stdout
		return w
	}
	// Lazy open; recorded here so Serialize can surface the error.
	w.out = &lazyFile{path: output}
	w.closer = w.out.(*lazyFile)
	return w
}

// Serialize writes v to the writer's output in the writer's format.
func (w *Writer) Serialize(_ context.Context, v any) error {
	switch w.format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(data)
		return err

	case FormatText:
		if tw, ok := v.(TextWriter); ok {
			return tw.WriteText(w.out)
		}
		// Values without a textual form fall through to JSON.
		fallthrough

	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		if _, err := w.out.Write(data); err != nil {
			return err
		}
		_, err = io.WriteString(w.out, "\n")
		return err
	}
}

// Close closes the underlying file, when the writer targets one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// lazyFile defers file creation until the first write.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, fmt.Errorf("failed to create output file %q: %w", l.path, err)
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
