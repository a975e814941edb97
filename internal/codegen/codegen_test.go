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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
service: Example
enums:
  - name: ColorType
    values: [DARK_RED, light-blue]
shapes:
  - name: PaintType
    doc: "PaintType describes a paint."
    members:
      - {name: Name, type: string, required: true, min: 1, max: 8, pattern: '[a-z]+', example: gloss, doc: "The name."}
      - {name: Secret, type: string, sensitive: true, doc: "A secret."}
      - {name: Color, type: enum, target: ColorType, doc: "The color."}
      - {name: Layers, type: integer, min: 1, max: 5, doc: "The number of layers."}
      - {name: Tags, type: map, doc: "Tags."}
operations:
  - name: MixPaint
    doc: "mixes paints."
    input:
      - {name: Paints, type: list, element: structure, target: PaintType, required: true, min: 1, doc: "The paints."}
      - {name: MixedAt, type: timestamp, doc: "When."}
    output: []
`

func TestParseModel(t *testing.T) {
	m, err := ParseModel([]byte(testModel))
	require.NoError(t, err)

	assert.Equal(t, "Example", m.Service)
	require.Len(t, m.AllShapes(), 3)
	assert.Equal(t, []string{"PaintType", "MixPaintInput", "MixPaintOutput"}, shapeNames(m.AllShapes()))

	in := m.Shape("MixPaintInput")
	require.NotNil(t, in)
	assert.Equal(t, "MixPaintInput is the input of MixPaint, which mixes paints.", in.Doc)
	assert.Empty(t, m.Shape("MixPaintOutput").Members)
	assert.Equal(t, []string{"DARK_RED", "light-blue"}, m.Enum("ColorType").Values)
}

func TestParseModelErrors(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr string
	}{
		{
			name: "unknown field",
			model: `
service: X
shapes:
  - name: A
    colour: red
`,
			wantErr: "field colour not found",
		},
		{
			name: "unknown target",
			model: `
shapes:
  - name: A
    members:
      - {name: B, type: structure, target: Missing}
`,
			wantErr: `A.B: unknown shape "Missing"`,
		},
		{
			name: "duplicate member",
			model: `
shapes:
  - name: A
    members:
      - {name: B, type: string}
      - {name: B, type: boolean}
`,
			wantErr: "A: duplicate member B",
		},
		{
			name: "duplicate shape from operation",
			model: `
shapes:
  - name: GetInput
operations:
  - name: Get
`,
			wantErr: "duplicate shape GetInput",
		},
		{
			name: "list of booleans",
			model: `
shapes:
  - name: A
    members:
      - {name: B, type: list, element: boolean}
`,
			wantErr: "lists of boolean are not supported",
		},
		{
			name: "min above max",
			model: `
shapes:
  - name: A
    members:
      - {name: B, type: integer, min: 5, max: 1}
`,
			wantErr: "min 5 greater than max 1",
		},
		{
			name: "empty enum",
			model: `
enums:
  - name: E
`,
			wantErr: "enum E has no values",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel([]byte(tt.model))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender(t *testing.T) {
	m, err := ParseModel([]byte(testModel))
	require.NoError(t, err)

	files, err := Render(m, Options{Package: "paint", Header: "// Header.", Fixtures: true})
	require.NoError(t, err)

	byName := make(map[string]string, len(files))
	for _, f := range files {
		byName[f.Name] = string(f.Content)
	}
	require.ElementsMatch(t, []string{
		"zz_generated.enums.go",
		"zz_generated.types.go",
		"zz_generated.api_op_MixPaint.go",
		"zz_generated.fixtures_test.go",
	}, keys(byName))

	for name, src := range byName {
		assert.True(t, strings.HasPrefix(src, "// Header.\n\n"+generatedBanner+"\n\npackage paint\n"), name)
	}

	enums := byName["zz_generated.enums.go"]
	assert.Contains(t, enums, `ColorTypeDarkRed   ColorType = "DARK_RED"`)
	assert.Contains(t, enums, `ColorTypeLightBlue ColorType = "light-blue"`)
	assert.Contains(t, enums, "func (ColorType) Values() []ColorType {")

	types := byName["zz_generated.types.go"]
	for _, want := range []string{
		"Name *string `json:\"Name,omitempty\"`",
		"Color ColorType `json:\"Color,omitempty\"`",
		"Tags map[string]string `json:\"Tags,omitempty\"`",
		"func (s *PaintType) SetLayers(v int32) *PaintType {",
		"func (s *PaintType) AddTagsEntry(key, value string) error {",
		"func (s *PaintType) ClearTagsEntries() *PaintType {",
		`w.sensitive("Secret", s.Secret != nil)`,
		"validateString(path.Child(\"Name\"), s.Name, stringRule{required: true, min: 1, max: 8, pattern: `[a-z]+`})",
		`validateInt(path.Child("Layers"), s.Layers, intRule{hasMin: true, min: 1, hasMax: true, max: 5})`,
		`validateEnum(path.Child("Color"), s.Color, false)`,
	} {
		assert.Contains(t, types, want)
	}
	assert.Contains(t, types, "\"maps\"")
	assert.NotContains(t, types, "\"time\"")

	op := byName["zz_generated.api_op_MixPaint.go"]
	assert.Contains(t, op, "func (s *MixPaintInput) AppendPaints(v ...PaintType) *MixPaintInput {")
	assert.Contains(t, op, `validateElems(path.Child("Paints"), s.Paints, listRule{required: true, min: 1})`)
	assert.Contains(t, op, "type MixPaintOutput struct{}")
	assert.Contains(t, op, "\"time\"")

	fx := byName["zz_generated.fixtures_test.go"]
	assert.Contains(t, fx, `SetName("gloss")`)
	assert.Contains(t, fx, "SetColor(ColorTypeDarkRed)")
	assert.Contains(t, fx, "SetPaints([]PaintType{*fixturePaintType()})")
	assert.Contains(t, fx, "SetMixedAt(fixtureTime)")
}

func TestRenderRequiresPackage(t *testing.T) {
	m, err := ParseModel([]byte(testModel))
	require.NoError(t, err)

	_, err = Render(m, Options{})
	assert.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteFiles(dir, []File{{Name: "a.go", Content: []byte("package a\n")}}))

	b, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(b))
}

func TestEnumConst(t *testing.T) {
	tests := map[string]string{
		"SIGN_IN":         "EventSignIn",
		"phone_number":    "EventPhoneNumber",
		"OFF":             "EventOff",
		"SignInWithApple": "EventSignInWithApple",
		"client-secret":   "EventClientSecret",
	}
	for in, want := range tests {
		assert.Equal(t, want, enumConst("Event", in), in)
	}
}

func TestFixtureString(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }

	assert.Equal(t, "ex", fixtureString(&Member{Name: "Code", Type: TypeString, Example: "ex"}))
	assert.Equal(t, "Code-value", fixtureString(&Member{Name: "Code", Type: TypeString}))
	assert.Equal(t, "Cod", fixtureString(&Member{Name: "Code", Type: TypeString, Max: ptr(3)}))
	assert.Equal(t, "Code-valuexx", fixtureString(&Member{Name: "Code", Type: TypeString, Min: ptr(12)}))
	assert.Equal(t, int64(6), fixtureInt(&Member{Min: ptr(6), Max: ptr(99)}))
	assert.Equal(t, int64(1), fixtureInt(&Member{}))
}

func TestCommittedModel(t *testing.T) {
	m, err := LoadModel(filepath.Join("..", "..", "api", "model", "identityprovider.yaml"))
	require.NoError(t, err)

	assert.Len(t, m.Operations, 34)
	for _, op := range m.Operations {
		assert.NotNil(t, m.Shape(op.Name+"Input"), op.Name)
		assert.NotNil(t, m.Shape(op.Name+"Output"), op.Name)
	}
}

func TestCommittedModelIsUpToDate(t *testing.T) {
	m, err := LoadModel(filepath.Join("..", "..", "api", "model", "identityprovider.yaml"))
	require.NoError(t, err)
	header, err := os.ReadFile(filepath.Join("..", "..", "hack", "boilerplate.go.txt"))
	require.NoError(t, err)

	files, err := Render(m, Options{Package: "model", Header: string(header), Fixtures: true})
	require.NoError(t, err)
	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join("..", "..", "pkg", "model", f.Name))
		require.NoError(t, err, "run go generate ./pkg/model")
		assert.Equal(t, string(committed), string(f.Content), "%s is stale, run go generate ./pkg/model", f.Name)
	}
}

func shapeNames(shapes []*Shape) []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.Name
	}
	return out
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
