// SPDX-License-Identifier: MIT

// Package matfile reads and writes matrices as small YAML documents:
//
//	kind: int16            # optional, defaults to float64
//	rows: [[1, 2], [3, 4]]
//
// JSON is accepted as well, since every JSON document is valid YAML.
package matfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrNoRows is returned for documents without a rows field.
var ErrNoRows = errors.New("matfile: document has no rows")

// Document is the on-disk form of a matrix.
type Document struct {
	Kind string      `yaml:"kind,omitempty"`
	Rows [][]float64 `yaml:"rows,flow"`
}

// Matrix builds the instance the document describes.
func (d Document) Matrix() (*matrix.Matrix, error) {
	if d.Rows == nil {
		return nil, ErrNoRows
	}
	var opts []matrix.Option
	if d.Kind != "" {
		k, err := matrix.ParseKind(d.Kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithKind(k))
	}

	return matrix.FromRows(d.Rows, opts...)
}

// FromMatrix returns the document form of m.
func FromMatrix(m *matrix.Matrix) Document {
	return Document{Kind: m.Kind().String(), Rows: m.ToArray()}
}

// Decode reads one document from r.
func Decode(r io.Reader) (*matrix.Matrix, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("matfile: decode: %w", err)
	}
	m, err := doc.Matrix()
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}

	return m, nil
}

// Encode writes m to w as one document.
func Encode(w io.Writer, m *matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matfile: encode: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMatrix(m)); err != nil {
		return fmt.Errorf("matfile: encode: %w", err)
	}

	return enc.Close()
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*matrix.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// WriteFile encodes m into path, replacing any existing file.
func WriteFile(path string, m *matrix.Matrix) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
