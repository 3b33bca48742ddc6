package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/model"
)

type document struct {
	Package string  `json:"package"`
	Classes []class `json:"classes"`
	Edges   []edge  `json:"edges"`
}

type class struct {
	Module  string   `json:"module"`
	Name    string   `json:"name"`
	FQName  string   `json:"fqname"`
	Alias   string   `json:"alias"`
	Bases   []string `json:"bases"`
	Methods []string `json:"methods"`
	Path    string   `json:"path,omitempty"`
	Line    int      `json:"line,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes pkg as indented JSON and writes it to w. Empty base and
// method lists are written as [] rather than null.
func WriteJSON(w io.Writer, pkg *model.Package) error {
	out := document{
		Package: pkg.Name,
		Classes: make([]class, len(pkg.Classes)),
		Edges:   []edge{},
	}

	for i, c := range pkg.Classes {
		out.Classes[i] = class{
			Module:  c.Module,
			Name:    c.Name,
			FQName:  c.FQName(),
			Alias:   c.Alias(),
			Bases:   nonNil(c.Bases),
			Methods: nonNil(c.Methods),
			Path:    c.Path,
			Line:    c.Line,
		}
	}
	for _, e := range pkg.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteDocument writes data to dir/<name>.<ext>, creating dir if needed and
// overwriting an existing file. It returns the written path.
func WriteDocument(dir, name, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", dir)
	}
	path := filepath.Join(dir, name+"."+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return path, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
