// Package seed builds the sample catalog from an embedded YAML manifest. The
// manifest is a compile-time asset, so loading it never touches the
// filesystem at runtime.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mpetrovic/folio/internal/document"
)

//go:embed catalog.yaml
var manifestYAML []byte

// Entry declares one document in the manifest. Exactly one of Body, Rows, or
// Slides is meaningful, selected by Kind.
type Entry struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Body   string   `yaml:"body,omitempty"`
	Rows   [][]any  `yaml:"rows,omitempty"`
	Slides []string `yaml:"slides,omitempty"`
}

// Manifest models catalog.yaml.
type Manifest struct {
	Version   int     `yaml:"version"`
	Documents []Entry `yaml:"documents"`
}

// Load parses the embedded manifest.
func Load() (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return Manifest{}, fmt.Errorf("seed: parse manifest: %w", err)
	}
	if len(m.Documents) == 0 {
		return Manifest{}, fmt.Errorf("seed: manifest declares no documents")
	}
	return m, nil
}

// Build constructs documents from the embedded manifest. A nil clock uses
// wall time; the demo passes a fixed clock for deterministic output.
func Build(clock func() time.Time) ([]document.Document, error) {
	m, err := Load()
	if err != nil {
		return nil, err
	}
	var opts []document.Option
	if clock != nil {
		opts = append(opts, document.WithClock(clock))
	}
	docs := make([]document.Document, 0, len(m.Documents))
	for _, entry := range m.Documents {
		doc, err := buildEntry(entry, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func buildEntry(entry Entry, opts []document.Option) (document.Document, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("seed: entry missing name")
	}
	switch document.Kind(entry.Kind) {
	case document.KindText:
		return document.NewText(entry.Name, entry.Body, opts...), nil
	case document.KindSpreadsheet:
		grid, err := buildGrid(entry.Name, entry.Rows)
		if err != nil {
			return nil, err
		}
		return document.NewSpreadsheet(entry.Name, grid, opts...), nil
	case document.KindPresentation:
		return document.NewDeck(entry.Name, entry.Slides, opts...), nil
	default:
		return nil, fmt.Errorf("seed: %q has unknown kind %q", entry.Name, entry.Kind)
	}
}

func buildGrid(name string, rows [][]any) ([][]document.Cell, error) {
	grid := make([][]document.Cell, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]document.Cell, 0, len(row))
		for colIdx, value := range row {
			cell, err := buildCell(value)
			if err != nil {
				return nil, fmt.Errorf("seed: %s row %d col %d: %w", name, rowIdx, colIdx, err)
			}
			cells = append(cells, cell)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func buildCell(value any) (document.Cell, error) {
	switch v := value.(type) {
	case string:
		return document.TextCell(v), nil
	case int:
		return document.NumberCell(float64(v)), nil
	case int64:
		return document.NumberCell(float64(v)), nil
	case float64:
		return document.NumberCell(v), nil
	default:
		return document.NoCell, fmt.Errorf("unsupported cell value %T", value)
	}
}
