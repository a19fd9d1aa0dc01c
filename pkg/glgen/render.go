package glgen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"zero": Zero}).
	ParseFS(templateFS, "templates/*.tmpl"))

// Outputs maps every generated file, relative to the module root, to the
// template that renders it.
var Outputs = []struct {
	Path     string
	Template string
}{
	{Path: "pkg/glapi/offsets_gen.go", Template: "offsets.go.tmpl"},
	{Path: "pkg/glapi/api_gen.go", Template: "api.go.tmpl"},
	{Path: "pkg/backend/noop/noop_gen.go", Template: "noop.go.tmpl"},
	{Path: "pkg/trace/wrap_gen.go", Template: "trace.go.tmpl"},
	{Path: "pkg/backend/native/procs_gen.go", Template: "procs.go.tmpl"},
}

type File struct {
	Path string
	Data []byte
}

type alias struct {
	Name   string
	Target string
}

type data struct {
	Module    string
	Functions []Function
	Aliases   []alias
	Unsafe    bool
}

// Render produces the gofmt'ed generated sources for r. module is the import
// path of the module the files are written into.
func Render(r *Registry, module string) ([]File, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	d := data{Module: module, Functions: r.Functions()}
	for _, f := range d.Functions {
		for _, a := range f.Aliases {
			d.Aliases = append(d.Aliases, alias{Name: a.Name, Target: f.Name})
		}
		if strings.Contains(f.Signature(false), "unsafe.") {
			d.Unsafe = true
		}
	}

	files := make([]File, 0, len(Outputs))
	for _, out := range Outputs {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, out.Template, d); err != nil {
			return nil, fmt.Errorf("%s: %w", out.Path, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("%s: gofmt: %w", out.Path, err)
		}
		files = append(files, File{Path: filepath.FromSlash(out.Path), Data: src})
	}
	return files, nil
}
