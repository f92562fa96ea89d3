package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vietdv277/chimectl/internal/invoke"
)

type errorRecord struct {
	Operation string `json:"operation" yaml:"operation"`
	Kind      string `json:"kind" yaml:"kind"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

// RenderError writes a failed invocation as a structured record. YAML output
// gets a YAML record, everything else gets one line of JSON.
func RenderError(w io.Writer, format string, ie *invoke.InvocationError) error {
	rec := errorRecord{
		Operation: ie.Operation,
		Kind:      string(ie.Kind),
		Code:      ie.Code,
		Message:   ie.Message,
	}

	if format == FormatYAML {
		data, err := yaml.Marshal(map[string]errorRecord{"error": rec})
		if err != nil {
			return fmt.Errorf("failed to encode error: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	data, err := json.Marshal(map[string]errorRecord{"error": rec})
	if err != nil {
		return fmt.Errorf("failed to encode error: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
