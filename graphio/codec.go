package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath picks the format from a file extension:
// .yaml/.yml → YAML, .json → JSON.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads one document from r. Unknown fields are rejected.
// The document is not validated; see Document.Validate.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("graphio: decode json: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	return doc, nil
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// LoadFile decodes and validates the document at path.
func LoadFile(path string) (Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("graphio: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if err = doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
