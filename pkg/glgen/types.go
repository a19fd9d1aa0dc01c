package glgen

import (
	"fmt"
	"strings"
)

var scalars = map[string]string{
	"GLenum":     "uint32",
	"GLboolean":  "bool",
	"GLbitfield": "uint32",
	"GLbyte":     "int8",
	"GLshort":    "int16",
	"GLint":      "int32",
	"GLsizei":    "int32",
	"GLubyte":    "uint8",
	"GLushort":   "uint16",
	"GLuint":     "uint32",
	"GLfloat":    "float32",
	"GLclampf":   "float32",
	"GLdouble":   "float64",
	"GLclampd":   "float64",
}

// Go keywords used as GL parameter names.
var renames = map[string]string{
	"type":  "xtype",
	"func":  "xfunc",
	"range": "xrange",
	"map":   "xmap",
}

// GoType maps a C parameter type to its Go form. const is dropped,
// GLvoid* becomes unsafe.Pointer and every other pointer stays typed.
func GoType(ctype string) (string, error) {
	stars := strings.Count(ctype, "*")
	base := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(ctype, "const", ""), "*", ""))
	if base == "GLvoid" || base == "void" {
		if stars == 0 {
			return "", fmt.Errorf("void is not a parameter type")
		}
		return strings.Repeat("*", stars-1) + "unsafe.Pointer", nil
	}
	t, ok := scalars[base]
	if !ok {
		return "", fmt.Errorf("unknown type %q", ctype)
	}
	return strings.Repeat("*", stars) + t, nil
}

func mustGoType(ctype string) string {
	t, err := GoType(ctype)
	if err != nil {
		panic(err)
	}
	return t
}

// GoName returns a parameter name that is legal in Go.
func GoName(name string) string {
	if r, ok := renames[name]; ok {
		return r
	}
	return name
}

// Zero is the zero value literal of a Go type produced by GoType.
func Zero(gotype string) string {
	switch {
	case strings.HasPrefix(gotype, "*"), gotype == "unsafe.Pointer":
		return "nil"
	case gotype == "bool":
		return "false"
	}
	return "0"
}

// Result is the Go result type of f, "" for void.
func (f Function) Result() string {
	if f.Return == nil || f.Return.Type == "void" {
		return ""
	}
	return mustGoType(f.Return.Type)
}

// Signature renders f as a Go func type. With named set the parameters keep
// their (renamed) names.
func (f Function) Signature(named bool) string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if named {
			b.WriteString(GoName(p.Name))
			b.WriteByte(' ')
		}
		b.WriteString(mustGoType(p.Type))
	}
	b.WriteByte(')')
	if r := f.Result(); r != "" {
		b.WriteByte(' ')
		b.WriteString(r)
	}
	return b.String()
}

// GoParams renders the named parameter list of f without parentheses.
func (f Function) GoParams() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = GoName(p.Name) + " " + mustGoType(p.Type)
	}
	return strings.Join(parts, ", ")
}

// Args renders the argument list that forwards f's parameters.
func (f Function) Args() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = GoName(p.Name)
	}
	return strings.Join(parts, ", ")
}
