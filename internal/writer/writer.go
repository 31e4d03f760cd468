// internal/writer/writer.go
package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Writer delivers a Plan to a Sink.
// Every payload is encoded before the first file is touched.
// If a write fails, files already written by this call are removed.
type Writer struct {
	sink Sink
}

func New(sink Sink) (*Writer, error) {
	if sink == nil {
		return nil, errors.New("writer: sink required")
	}
	return &Writer{sink: sink}, nil
}

// Write returns the written paths in plan order.
func (w *Writer) Write(plan Plan) ([]string, error) {
	// ------------------------------------------------------------
	// ENCODE (no IO)
	// ------------------------------------------------------------

	encoded := make([][]byte, 0, len(plan.Targets))
	for _, tgt := range plan.Targets {
		b, err := Encode(tgt.Payload, plan.Indent)
		if err != nil {
			return nil, fmt.Errorf("writer: encode %s: %w", tgt.Path, err)
		}
		encoded = append(encoded, b)
	}

	// ------------------------------------------------------------
	// WRITE (all or nothing)
	// ------------------------------------------------------------

	written := make([]string, 0, len(plan.Targets))
	for i, tgt := range plan.Targets {
		if err := w.sink.WriteFile(tgt.Path, encoded[i]); err != nil {
			errs := []error{fmt.Errorf("writer: write %s: %w", tgt.Path, err)}
			for _, p := range written {
				if rerr := w.sink.Remove(p); rerr != nil {
					errs = append(errs, fmt.Errorf("writer: rollback %s: %w", p, rerr))
				}
			}
			return nil, errors.Join(errs...)
		}
		written = append(written, tgt.Path)
	}

	return written, nil
}

// Encode renders v as indented JSON with a trailing newline.
// HTML escaping is off so unit symbols like "<" and "&" stay verbatim.
func Encode(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
