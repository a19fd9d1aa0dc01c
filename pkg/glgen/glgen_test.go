package glgen

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const module = "github.com/giongto35/gldispatch"

const small = `<registry name="gl">
  <category name="1.0">
    <function name="Clear" offset="0">
      <param name="mask" type="GLbitfield"/>
    </function>
    <function name="GetString" offset="2">
      <param name="name" type="GLenum"/>
      <return type="const GLubyte *"/>
    </function>
    <function name="Flush" offset="1"/>
  </category>
  <category name="GL_ARB_multitexture">
    <function name="ActiveTextureARB" offset="3">
      <alias name="ActiveTexture"/>
      <param name="texture" type="GLenum"/>
    </function>
    <function name="CallLists" offset="4">
      <param name="n" type="GLsizei"/>
      <param name="type" type="GLenum"/>
      <param name="lists" type="const GLvoid *"/>
    </function>
  </category>
</registry>`

func mustParse(t *testing.T, doc string) *Registry {
	t.Helper()
	r, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestParse(t *testing.T) {
	r := mustParse(t, small)
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	fns := r.Functions()
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.Name
	}
	if got := strings.Join(names, ","); got != "Clear,Flush,GetString,ActiveTextureARB,CallLists" {
		t.Errorf("offset order %v", got)
	}
	if fns[3].Category != "GL_ARB_multitexture" {
		t.Errorf("category %q", fns[3].Category)
	}
}

func TestPrototype(t *testing.T) {
	fns := mustParse(t, small).Functions()
	tests := []struct {
		f    Function
		want string
	}{
		{f: fns[0], want: "void Clear(GLbitfield mask)"},
		{f: fns[1], want: "void Flush(void)"},
		{f: fns[2], want: "const GLubyte *GetString(GLenum name)"},
		{f: fns[4], want: "void CallLists(GLsizei n, GLenum type, const GLvoid *lists)"},
	}
	for _, test := range tests {
		if got := test.f.Prototype(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestGoSignature(t *testing.T) {
	fns := mustParse(t, small).Functions()
	if s := fns[4].Signature(true); s != "func(n int32, xtype uint32, lists unsafe.Pointer)" {
		t.Errorf("got %q", s)
	}
	if s := fns[2].Signature(false); s != "func(uint32) *uint8" {
		t.Errorf("got %q", s)
	}
	if a := fns[4].Args(); a != "n, xtype, lists" {
		t.Errorf("got %q", a)
	}
	if c := fns[3].CoreName(); c != "ActiveTexture" {
		t.Errorf("core name %q", c)
	}
	if c := fns[0].CoreName(); c != "Clear" {
		t.Errorf("core name %q", c)
	}
}

func TestGoType(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "GLenum", want: "uint32"},
		{in: "GLboolean", want: "bool"},
		{in: "GLclampd", want: "float64"},
		{in: "const GLfloat *", want: "*float32"},
		{in: "GLboolean *", want: "*bool"},
		{in: "GLvoid *", want: "unsafe.Pointer"},
		{in: "const GLvoid *", want: "unsafe.Pointer"},
		{in: "GLvoid **", want: "*unsafe.Pointer"},
		{in: "GLvoid", err: true},
		{in: "GLhalf", err: true},
	}
	for _, test := range tests {
		got, err := GoType(test.in)
		if (err != nil) != test.err {
			t.Errorf("GoType(%q) error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("GoType(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "duplicate name",
			doc:  `<registry><category name="1.0"><function name="A" offset="0"/><function name="A" offset="1"/></category></registry>`,
			want: ErrDuplicate,
		},
		{
			name: "alias shadows name",
			doc:  `<registry><category name="1.0"><function name="A" offset="0"/><function name="B" offset="1"><alias name="A"/></function></category></registry>`,
			want: ErrDuplicate,
		},
		{
			name: "shared offset",
			doc:  `<registry><category name="1.0"><function name="A" offset="0"/><function name="B" offset="0"/></category></registry>`,
			want: ErrDuplicate,
		},
		{
			name: "gap",
			doc:  `<registry><category name="1.0"><function name="A" offset="0"/><function name="B" offset="2"/></category></registry>`,
			want: ErrGap,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := mustParse(t, test.doc).Validate()
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}

	bad := `<registry><category name="1.0"><function name="A" offset="0"><param name="x" type="GLhalf"/></function></category></registry>`
	if err := mustParse(t, bad).Validate(); err == nil {
		t.Errorf("unknown type accepted")
	}
}

func TestABI(t *testing.T) {
	r := mustParse(t, small)

	var buf bytes.Buffer
	if err := r.WriteABI(&buf); err != nil {
		t.Fatal(err)
	}
	published, err := ReadABI(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(published) != 5 || published[2] != (Published{Offset: 2, Name: "GetString"}) {
		t.Fatalf("round trip gave %v", published)
	}
	if err := r.CheckABI(published); err != nil {
		t.Errorf("unchanged registry rejected: %v", err)
	}

	moved := append([]Published{}, published...)
	moved[1].Offset = 7
	if err := r.CheckABI(moved); !errors.Is(err, ErrABI) {
		t.Errorf("moved entry accepted: %v", err)
	}
	dropped := append(append([]Published{}, published...), Published{Offset: 5, Name: "Finish"})
	if err := r.CheckABI(dropped); !errors.Is(err, ErrABI) {
		t.Errorf("dropped entry accepted: %v", err)
	}

	if _, err := ReadABI(strings.NewReader("0 Clear extra\n")); err == nil {
		t.Errorf("malformed line accepted")
	}
}

func TestRenderParses(t *testing.T) {
	files, err := Render(mustParse(t, small), module)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != len(Outputs) {
		t.Fatalf("got %d files", len(files))
	}
	fset := token.NewFileSet()
	for _, f := range files {
		if _, err := parser.ParseFile(fset, f.Path, f.Data, parser.AllErrors); err != nil {
			t.Errorf("%s: %v", f.Path, err)
		}
	}

	api := string(files[1].Data)
	for _, want := range []string{
		`entryClear.Func(disp)(mask)`,
		`"ActiveTexture": OffsetActiveTextureARB`,
		`"const GLubyte *GetString(GLenum name)"`,
		`func ProcCallLists(disp *dispatch.Table) func(n int32, xtype uint32, lists unsafe.Pointer)`,
	} {
		if !strings.Contains(api, want) {
			t.Errorf("api_gen.go lacks %q", want)
		}
	}
	if !strings.Contains(string(files[4].Data), `{"glActiveTexture", gl.ActiveTexture}`) {
		t.Errorf("native procs should use the core name")
	}
}

func TestRenderRejectsInvalid(t *testing.T) {
	r := mustParse(t, `<registry><category name="1.0"><function name="A" offset="1"/></category></registry>`)
	if _, err := Render(r, module); !errors.Is(err, ErrGap) {
		t.Errorf("got %v", err)
	}
}

// The checked-in sources must be what the generator produces from the
// checked-in registry.
func TestGeneratedUpToDate(t *testing.T) {
	r, err := Load("../../api/gl_API.xml")
	if err != nil {
		t.Fatal(err)
	}
	abi, err := os.Open("../../api/abi.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = abi.Close() }()
	published, err := ReadABI(abi)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.CheckABI(published); err != nil {
		t.Fatal(err)
	}

	files, err := Render(r, module)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		have, err := os.ReadFile(filepath.Join("../..", f.Path))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(strings.Fields(string(have)), " ") != strings.Join(strings.Fields(string(f.Data)), " ") {
			t.Errorf("%s is stale, run go generate ./pkg/glapi", f.Path)
		}
	}
}
