// Package glgen turns the XML entry point registry into the generated parts
// of the dispatch layer: offsets, typed accessors and per-backend bindings.
package glgen

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

type (
	Registry struct {
		XMLName    xml.Name   `xml:"registry"`
		Name       string     `xml:"name,attr"`
		Categories []Category `xml:"category"`
	}
	Category struct {
		Name      string     `xml:"name,attr"`
		Functions []Function `xml:"function"`
	}
	Function struct {
		Name     string  `xml:"name,attr"`
		Offset   int     `xml:"offset,attr"`
		Proc     string  `xml:"proc,attr"`
		Aliases  []Alias `xml:"alias"`
		Params   []Param `xml:"param"`
		Return   *Return `xml:"return"`
		Category string  `xml:"-"`
	}
	Alias struct {
		Name string `xml:"name,attr"`
	}
	Param struct {
		Name string `xml:"name,attr"`
		Type string `xml:"type,attr"`
	}
	Return struct {
		Type string `xml:"type,attr"`
	}
)

// Parse reads a registry document.
func Parse(r io.Reader) (*Registry, error) {
	var reg Registry
	if err := xml.NewDecoder(r).Decode(&reg); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	for i := range reg.Categories {
		for j := range reg.Categories[i].Functions {
			reg.Categories[i].Functions[j].Category = reg.Categories[i].Name
		}
	}
	return &reg, nil
}

// Load parses the registry file at path.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Functions lists every function in offset order. Call Validate first, the
// result is only meaningful for a registry without gaps or duplicates.
func (r *Registry) Functions() []Function {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Functions)
	}
	out := make([]Function, n)
	for _, c := range r.Categories {
		for _, f := range c.Functions {
			if f.Offset >= 0 && f.Offset < n {
				out[f.Offset] = f
			}
		}
	}
	return out
}

func (f Function) ReturnType() string {
	if f.Return == nil {
		return "void"
	}
	return f.Return.Type
}

// Prototype formats f as a C declaration, e.g. "void Clear(GLbitfield mask)".
func (f Function) Prototype() string {
	var b strings.Builder
	ret := f.ReturnType()
	b.WriteString(ret)
	if !strings.HasSuffix(ret, "*") {
		b.WriteByte(' ')
	}
	b.WriteString(f.Name)
	b.WriteByte('(')
	if len(f.Params) == 0 {
		b.WriteString("void")
	}
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type)
		if !strings.HasSuffix(p.Type, "*") {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
	}
	b.WriteByte(')')
	return b.String()
}

// CoreName is the name drivers export f under. ARB functions promoted to
// core drop their suffix and the proc attribute overrides both.
func (f Function) CoreName() string {
	if f.Proc != "" {
		return f.Proc
	}
	if base, ok := strings.CutSuffix(f.Name, "ARB"); ok {
		for _, a := range f.Aliases {
			if a.Name == base {
				return base
			}
		}
	}
	return f.Name
}
