/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/tools/imports"
)

const generatedBanner = "// Code generated by modelgen. DO NOT EDIT."

const fieldImport = "k8s.io/apimachinery/pkg/util/validation/field"

// Options control rendering.
type Options struct {
	// Package is the name of the generated package.
	Package string
	// Header is prepended to every file, usually a license comment.
	Header string
	// Fixtures adds a _test.go file with a populated value of every shape.
	Fixtures bool

	Logger logr.Logger
}

// File is one rendered Go source file.
type File struct {
	Name    string
	Content []byte
}

// Render produces the Go sources for m.
func Render(m *Model, opts Options) ([]File, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name cannot be empty")
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	var files []File
	add := func(name string, p *printer) error {
		src, err := imports.Process(name, p.bytes(), nil)
		if err != nil {
			return fmt.Errorf("failed to format %s: %w", name, err)
		}
		files = append(files, File{Name: name, Content: src})
		return nil
	}

	if len(m.Enums) > 0 {
		p := newPrinter(opts, nil)
		for _, e := range m.Enums {
			renderEnum(p, e)
		}
		if err := add("zz_generated.enums.go", p); err != nil {
			return nil, err
		}
	}

	if len(m.Shapes) > 0 {
		p := newPrinter(opts, shapeImports(m.Shapes...))
		for _, s := range m.Shapes {
			renderShape(p, s)
		}
		if err := add("zz_generated.types.go", p); err != nil {
			return nil, err
		}
	}

	for _, op := range m.Operations {
		p := newPrinter(opts, shapeImports(op.inputShape, op.outputShape))
		renderShape(p, op.inputShape)
		renderShape(p, op.outputShape)
		if err := add("zz_generated.api_op_"+op.Name+".go", p); err != nil {
			return nil, err
		}
	}

	if opts.Fixtures {
		p := newPrinter(opts, nil)
		renderFixtures(p, m)
		if err := add("zz_generated.fixtures_test.go", p); err != nil {
			return nil, err
		}
	}

	log.Info("rendered model", "service", m.Service, "enums", len(m.Enums),
		"shapes", len(m.Shapes), "operations", len(m.Operations), "files", len(files))
	return files, nil
}

// WriteFiles writes files into dir, replacing existing files of the same name.
func WriteFiles(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// printer accumulates generated source, one line per call to P.
type printer struct {
	buf bytes.Buffer
}

func newPrinter(opts Options, imps []string) *printer {
	p := &printer{}
	if h := strings.TrimSpace(opts.Header); h != "" {
		p.P(h)
		p.P()
	}
	p.P(generatedBanner)
	p.P()
	p.P("package ", opts.Package)
	p.P()
	if len(imps) > 0 {
		p.P("import (")
		var std, ext []string
		for _, imp := range imps {
			if strings.Contains(imp, ".") {
				ext = append(ext, imp)
			} else {
				std = append(std, imp)
			}
		}
		for _, imp := range std {
			p.P("\t", fmt.Sprintf("%q", imp))
		}
		if len(std) > 0 && len(ext) > 0 {
			p.P()
		}
		for _, imp := range ext {
			p.P("\t", fmt.Sprintf("%q", imp))
		}
		p.P(")")
		p.P()
	}
	return p
}

func (p *printer) P(v ...any) {
	for _, x := range v {
		fmt.Fprint(&p.buf, x)
	}
	p.buf.WriteByte('\n')
}

func (p *printer) bytes() []byte {
	return p.buf.Bytes()
}

// shapeImports returns the imports needed by the given shapes.
func shapeImports(shapes ...*Shape) []string {
	need := map[string]bool{fieldImport: true}
	for _, s := range shapes {
		for _, m := range s.Members {
			switch m.Type {
			case TypeList:
				need["slices"] = true
			case TypeMap:
				need["maps"] = true
			case TypeTimestamp:
				need["time"] = true
			}
		}
	}
	out := make([]string, 0, len(need))
	for imp := range need {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

func renderEnum(p *printer, e *Enum) {
	p.P("// ", e.Name, " enumerates the values accepted by ", e.Name, " members.")
	p.P("type ", e.Name, " string")
	p.P()
	p.P("// Enum values for ", e.Name)
	p.P("const (")
	width := 0
	for _, v := range e.Values {
		width = max(width, len(enumConst(e.Name, v)))
	}
	for _, v := range e.Values {
		c := enumConst(e.Name, v)
		p.P("\t", c, strings.Repeat(" ", width-len(c)), " ", e.Name, " = ", fmt.Sprintf("%q", v))
	}
	p.P(")")
	p.P()
	p.P("// Values returns all known values for ", e.Name, ". Note that this can be")
	p.P("// expanded in the future, and so it is only as up to date as the client.")
	p.P("func (", e.Name, ") Values() []", e.Name, " {")
	p.P("\treturn []", e.Name, "{")
	for _, v := range e.Values {
		p.P("\t\t", fmt.Sprintf("%q", v), ",")
	}
	p.P("\t}")
	p.P("}")
	p.P()
}

func renderShape(p *printer, s *Shape) {
	n := s.Name
	p.P("// ", s.Doc)
	if len(s.Members) == 0 {
		p.P("type ", n, " struct{}")
	} else {
		p.P("type ", n, " struct {")
		for i, m := range s.Members {
			if i > 0 {
				p.P()
			}
			p.P("\t// ", m.Doc)
			if m.Required {
				p.P("\t//")
				p.P("\t// This member is required.")
			}
			p.P("\t", m.Name, " ", goType(m), " `json:\"", m.Name, ",omitempty\"`")
		}
		p.P("}")
	}
	p.P()

	for _, m := range s.Members {
		renderAccessors(p, s, m)
	}
	renderString(p, s)
	renderEqual(p, s)
	renderHash(p, s)
	renderValidate(p, s)
}

func renderAccessors(p *printer, s *Shape, m *Member) {
	n, name := s.Name, m.Name
	vt := valueType(m)

	if isPointerScalar(m) {
		p.P("// Get", name, " returns the value of ", name, ", or the zero value when it is unset.")
		p.P("func (s *", n, ") Get", name, "() ", vt, " {")
		p.P("\tif s == nil || s.", name, " == nil {")
		p.P("\t\treturn ", zeroValue(m))
		p.P("\t}")
		p.P("\treturn *s.", name)
		p.P("}")
	} else {
		p.P("// Get", name, " returns ", name, ".")
		p.P("func (s *", n, ") Get", name, "() ", vt, " {")
		p.P("\tif s == nil {")
		p.P("\t\treturn ", zeroValue(m))
		p.P("\t}")
		p.P("\treturn s.", name)
		p.P("}")
	}
	p.P()

	p.P("// Set", name, " sets ", name, " and returns s.")
	p.P("func (s *", n, ") Set", name, "(v ", vt, ") *", n, " {")
	switch {
	case isPointerScalar(m):
		p.P("\ts.", name, " = &v")
	case m.Type == TypeList:
		p.P("\ts.", name, " = slices.Clone(v)")
	case m.Type == TypeMap:
		p.P("\ts.", name, " = maps.Clone(v)")
	default:
		p.P("\ts.", name, " = v")
	}
	p.P("\treturn s")
	p.P("}")
	p.P()

	switch m.Type {
	case TypeList:
		p.P("// Append", name, " appends v to ", name, " and returns s.")
		p.P("func (s *", n, ") Append", name, "(v ...", elemType(m), ") *", n, " {")
		p.P("\ts.", name, " = append(s.", name, ", v...)")
		p.P("\treturn s")
		p.P("}")
		p.P()
	case TypeMap:
		p.P("// Add", name, "Entry adds key to ", name, ". It fails with ErrDuplicateKey")
		p.P("// if the key is already present.")
		p.P("func (s *", n, ") Add", name, "Entry(key, value string) error {")
		p.P("\tif _, ok := s.", name, "[key]; ok {")
		p.P("\t\treturn duplicateKey(", fmt.Sprintf("%q", name), ", key)")
		p.P("\t}")
		p.P("\tif s.", name, " == nil {")
		p.P("\t\ts.", name, " = make(map[string]string)")
		p.P("\t}")
		p.P("\ts.", name, "[key] = value")
		p.P("\treturn nil")
		p.P("}")
		p.P()
		p.P("// Clear", name, "Entries removes every entry of ", name, " and returns s.")
		p.P("func (s *", n, ") Clear", name, "Entries() *", n, " {")
		p.P("\ts.", name, " = nil")
		p.P("\treturn s")
		p.P("}")
		p.P()
	}
}

func renderString(p *printer, s *Shape) {
	n := s.Name
	sensitive := false
	for _, m := range s.Members {
		sensitive = sensitive || m.Sensitive
	}
	if sensitive {
		p.P("// String returns a debug representation of ", n, ". Sensitive members are redacted.")
	} else {
		p.P("// String returns a debug representation of ", n, ".")
	}
	p.P("func (s *", n, ") String() string {")
	p.P("\tif s == nil {")
	p.P("\t\treturn \"<nil>\"")
	p.P("\t}")
	if len(s.Members) == 0 {
		p.P("\treturn \"{}\"")
		p.P("}")
		p.P()
		return
	}
	p.P("\tw := newStringWriter()")
	for _, m := range s.Members {
		q := fmt.Sprintf("%q", m.Name)
		f := "s." + m.Name
		switch {
		case m.Sensitive:
			p.P("\tw.sensitive(", q, ", ", f, " != nil)")
		case m.Type == TypeString:
			p.P("\tw.str(", q, ", ", f, ")")
		case m.Type == TypeBoolean:
			p.P("\tw.boolean(", q, ", ", f, ")")
		case m.Type == TypeInteger:
			p.P("\tw.i32(", q, ", ", f, ")")
		case m.Type == TypeLong:
			p.P("\tw.i64(", q, ", ", f, ")")
		case m.Type == TypeTimestamp:
			p.P("\tw.timestamp(", q, ", ", f, ")")
		case m.Type == TypeEnum:
			p.P("\tw.enum(", q, ", string(", f, "))")
		case m.Type == TypeMap:
			p.P("\tw.stringMap(", q, ", ", f, ")")
		case m.Type == TypeList && m.Element == TypeString:
			p.P("\tw.strs(", q, ", ", f, ")")
		case m.Type == TypeList && m.Element == TypeEnum:
			p.P("\twriteEnums(w, ", q, ", ", f, ")")
		case m.Type == TypeList:
			p.P("\twriteList(w, ", q, ", ", f, ")")
		case m.Type == TypeStructure:
			p.P("\tif ", f, " != nil {")
			p.P("\t\tw.field(", q, ", ", f, ".String())")
			p.P("\t}")
		}
	}
	p.P("\treturn w.String()")
	p.P("}")
	p.P()
}

func renderEqual(p *printer, s *Shape) {
	n := s.Name
	p.P("// Equal reports whether s and o hold the same members.")
	p.P("func (s *", n, ") Equal(o *", n, ") bool {")
	p.P("\tif s == nil || o == nil {")
	p.P("\t\treturn s == o")
	p.P("\t}")
	if len(s.Members) == 0 {
		p.P("\treturn true")
		p.P("}")
		p.P()
		return
	}
	for i, m := range s.Members {
		a, b := "s."+m.Name, "o."+m.Name
		var expr string
		switch {
		case m.Type == TypeTimestamp:
			expr = "equalTime(" + a + ", " + b + ")"
		case m.Type == TypeEnum:
			expr = a + " == " + b
		case m.Type == TypeMap:
			expr = "equalMap(" + a + ", " + b + ")"
		case m.Type == TypeList && m.Element == TypeStructure:
			expr = "equalList(" + a + ", " + b + ")"
		case m.Type == TypeList:
			expr = "equalValues(" + a + ", " + b + ")"
		case m.Type == TypeStructure:
			expr = a + ".Equal(" + b + ")"
		default:
			expr = "equalPtr(" + a + ", " + b + ")"
		}
		prefix, suffix := "\t\t", " &&"
		if i == 0 {
			prefix = "\treturn "
		}
		if i == len(s.Members)-1 {
			suffix = ""
		}
		p.P(prefix, expr, suffix)
	}
	p.P("}")
	p.P()
}

func renderHash(p *printer, s *Shape) {
	n := s.Name
	p.P("// Hash returns a hash of the members of s. Equal values have equal hashes.")
	p.P("func (s *", n, ") Hash() uint64 {")
	p.P("\th := newHasher()")
	p.P("\ts.hash(h)")
	p.P("\treturn h.Sum64()")
	p.P("}")
	p.P()
	p.P("func (s *", n, ") hash(h *hasher) {")
	p.P("\tif s == nil {")
	p.P("\t\th.absent()")
	p.P("\t\treturn")
	p.P("\t}")
	p.P("\th.present()")
	for _, m := range s.Members {
		f := "s." + m.Name
		switch {
		case m.Type == TypeString:
			p.P("\th.str(", f, ")")
		case m.Type == TypeBoolean:
			p.P("\th.boolean(", f, ")")
		case m.Type == TypeInteger:
			p.P("\th.i32(", f, ")")
		case m.Type == TypeLong:
			p.P("\th.i64(", f, ")")
		case m.Type == TypeTimestamp:
			p.P("\th.timestamp(", f, ")")
		case m.Type == TypeEnum:
			p.P("\th.enum(string(", f, "))")
		case m.Type == TypeMap:
			p.P("\th.stringMap(", f, ")")
		case m.Type == TypeList && m.Element == TypeString:
			p.P("\th.strs(", f, ")")
		case m.Type == TypeList && m.Element == TypeEnum:
			p.P("\thashEnums(h, ", f, ")")
		case m.Type == TypeList:
			p.P("\thashList(h, ", f, ")")
		case m.Type == TypeStructure:
			p.P("\t", f, ".hash(h)")
		}
	}
	p.P("}")
	p.P()
}

func renderValidate(p *printer, s *Shape) {
	n := s.Name
	p.P("// Validate checks s against the constraints of the model. It returns nil or")
	p.P("// an aggregate of field errors.")
	p.P("func (s *", n, ") Validate() error {")
	p.P("\treturn s.validate(nil).ToAggregate()")
	p.P("}")
	p.P()

	var lines []string
	for _, m := range s.Members {
		lines = append(lines, validateLines(m)...)
	}
	p.P("func (s *", n, ") validate(path *field.Path) field.ErrorList {")
	if len(lines) == 0 {
		p.P("\treturn nil")
		p.P("}")
		p.P()
		return
	}
	p.P("\tif s == nil {")
	p.P("\t\treturn nil")
	p.P("\t}")
	p.P("\tvar errs field.ErrorList")
	for _, l := range lines {
		p.P("\t", l)
	}
	p.P("\treturn errs")
	p.P("}")
	p.P()
}

func validateLines(m *Member) []string {
	path := fmt.Sprintf("path.Child(%q)", m.Name)
	f := "s." + m.Name
	appendErrs := func(call string) string { return "errs = append(errs, " + call + "...)" }
	required := func() string { return appendErrs("validateRequired(" + path + ", " + f + " != nil)") }

	switch {
	case m.Type == TypeString:
		if !m.Required && m.Min == nil && m.Max == nil && m.Pattern == "" {
			return nil
		}
		return []string{appendErrs("validateString(" + path + ", " + f + ", " + stringRule(m) + ")")}
	case m.Type == TypeInteger || m.Type == TypeLong:
		if !m.Required && m.Min == nil && m.Max == nil {
			return nil
		}
		return []string{appendErrs("validateInt(" + path + ", " + f + ", " + intRule(m) + ")")}
	case m.Type == TypeBoolean || m.Type == TypeTimestamp || m.Type == TypeMap:
		if !m.Required {
			return nil
		}
		return []string{required()}
	case m.Type == TypeEnum:
		return []string{appendErrs(fmt.Sprintf("validateEnum(%s, %s, %t)", path, f, m.Required))}
	case m.Type == TypeList && m.Element == TypeString:
		if !m.Required && m.Min == nil && m.Max == nil {
			return nil
		}
		return []string{appendErrs("validateCount(" + path + ", " + f + " != nil, len(" + f + "), " + listRule(m) + ")")}
	case m.Type == TypeList && m.Element == TypeEnum:
		return []string{appendErrs("validateEnums(" + path + ", " + f + ", " + listRule(m) + ")")}
	case m.Type == TypeList:
		return []string{appendErrs("validateElems(" + path + ", " + f + ", " + listRule(m) + ")")}
	case m.Type == TypeStructure:
		var out []string
		if m.Required {
			out = append(out, required())
		}
		return append(out, appendErrs(f+".validate("+path+")"))
	}
	return nil
}

func stringRule(m *Member) string {
	var parts []string
	if m.Required {
		parts = append(parts, "required: true")
	}
	if m.Sensitive {
		parts = append(parts, "sensitive: true")
	}
	if m.Min != nil && *m.Min > 0 {
		parts = append(parts, fmt.Sprintf("min: %d", *m.Min))
	}
	if m.Max != nil {
		parts = append(parts, fmt.Sprintf("max: %d", *m.Max))
	}
	if m.Pattern != "" {
		parts = append(parts, "pattern: "+goRawString(m.Pattern))
	}
	return "stringRule{" + strings.Join(parts, ", ") + "}"
}

func intRule(m *Member) string {
	var parts []string
	if m.Required {
		parts = append(parts, "required: true")
	}
	if m.Min != nil {
		parts = append(parts, fmt.Sprintf("hasMin: true, min: %d", *m.Min))
	}
	if m.Max != nil {
		parts = append(parts, fmt.Sprintf("hasMax: true, max: %d", *m.Max))
	}
	return "intRule{" + strings.Join(parts, ", ") + "}"
}

func listRule(m *Member) string {
	var parts []string
	if m.Required {
		parts = append(parts, "required: true")
	}
	if m.Min != nil && *m.Min > 0 {
		parts = append(parts, fmt.Sprintf("min: %d", *m.Min))
	}
	if m.Max != nil {
		parts = append(parts, fmt.Sprintf("max: %d", *m.Max))
	}
	return "listRule{" + strings.Join(parts, ", ") + "}"
}

func goRawString(s string) string {
	if strings.Contains(s, "`") {
		return fmt.Sprintf("%q", s)
	}
	return "`" + s + "`"
}
