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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MemberType is the kind of a shape member.
type MemberType string

const (
	TypeString    MemberType = "string"
	TypeBoolean   MemberType = "boolean"
	TypeInteger   MemberType = "integer"
	TypeLong      MemberType = "long"
	TypeTimestamp MemberType = "timestamp"
	TypeEnum      MemberType = "enum"
	TypeStructure MemberType = "structure"
	TypeList      MemberType = "list"
	TypeMap       MemberType = "map"
)

// Model is a parsed service model.
type Model struct {
	Service    string       `yaml:"service"`
	Enums      []*Enum      `yaml:"enums"`
	Shapes     []*Shape     `yaml:"shapes"`
	Operations []*Operation `yaml:"operations"`

	enums  map[string]*Enum
	shapes map[string]*Shape
}

// Enum is a named set of string values.
type Enum struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Shape is a structure of the model.
type Shape struct {
	Name    string    `yaml:"name"`
	Doc     string    `yaml:"doc"`
	Members []*Member `yaml:"members"`
}

// Operation pairs the input and output members of one API call.
type Operation struct {
	Name   string    `yaml:"name"`
	Doc    string    `yaml:"doc"`
	Input  []*Member `yaml:"input"`
	Output []*Member `yaml:"output"`

	inputShape  *Shape
	outputShape *Shape
}

// Member is a field of a shape.
type Member struct {
	Name      string     `yaml:"name"`
	Type      MemberType `yaml:"type"`
	Element   MemberType `yaml:"element"`
	Target    string     `yaml:"target"`
	Doc       string     `yaml:"doc"`
	Required  bool       `yaml:"required"`
	Sensitive bool       `yaml:"sensitive"`
	Min       *int64     `yaml:"min"`
	Max       *int64     `yaml:"max"`
	Pattern   string     `yaml:"pattern"`
	Example   string     `yaml:"example"`
}

// LoadModel reads and resolves the model at path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	return ParseModel(data)
}

// ParseModel decodes and resolves a model document.
func ParseModel(data []byte) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Resolve indexes the model and checks every member reference. Operations are
// expanded into <Name>Input and <Name>Output shapes.
func (m *Model) Resolve() error {
	m.enums = make(map[string]*Enum, len(m.Enums))
	m.shapes = make(map[string]*Shape, len(m.Shapes)+2*len(m.Operations))

	var errs []error
	for _, e := range m.Enums {
		if _, ok := m.enums[e.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate enum %s", e.Name))
			continue
		}
		if len(e.Values) == 0 {
			errs = append(errs, fmt.Errorf("enum %s has no values", e.Name))
		}
		m.enums[e.Name] = e
	}

	addShape := func(s *Shape) {
		if _, ok := m.shapes[s.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate shape %s", s.Name))
			return
		}
		if _, ok := m.enums[s.Name]; ok {
			errs = append(errs, fmt.Errorf("shape %s collides with an enum", s.Name))
			return
		}
		m.shapes[s.Name] = s
	}
	for _, s := range m.Shapes {
		addShape(s)
	}
	for _, op := range m.Operations {
		op.inputShape = &Shape{
			Name:    op.Name + "Input",
			Doc:     fmt.Sprintf("%sInput is the input of %s, which %s", op.Name, op.Name, op.Doc),
			Members: op.Input,
		}
		op.outputShape = &Shape{
			Name:    op.Name + "Output",
			Doc:     fmt.Sprintf("%sOutput is the output of %s.", op.Name, op.Name),
			Members: op.Output,
		}
		addShape(op.inputShape)
		addShape(op.outputShape)
	}

	for _, s := range m.AllShapes() {
		seen := make(map[string]bool, len(s.Members))
		for _, mem := range s.Members {
			if seen[mem.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate member %s", s.Name, mem.Name))
			}
			seen[mem.Name] = true
			if err := m.checkMember(mem); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", s.Name, mem.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (m *Model) checkMember(mem *Member) error {
	kind := mem.Type
	if kind == TypeList {
		if mem.Element == "" {
			return errors.New("list without element type")
		}
		kind = mem.Element
	} else if mem.Element != "" {
		return fmt.Errorf("element set on %s member", mem.Type)
	}

	switch kind {
	case TypeString, TypeBoolean, TypeInteger, TypeLong, TypeTimestamp, TypeMap:
		if mem.Target != "" {
			return fmt.Errorf("target set on %s member", kind)
		}
	case TypeEnum:
		if _, ok := m.enums[mem.Target]; !ok {
			return fmt.Errorf("unknown enum %q", mem.Target)
		}
	case TypeStructure:
		if _, ok := m.shapes[mem.Target]; !ok {
			return fmt.Errorf("unknown shape %q", mem.Target)
		}
	default:
		return fmt.Errorf("unknown type %q", kind)
	}
	if mem.Type == TypeList && kind != TypeString && kind != TypeEnum && kind != TypeStructure {
		return fmt.Errorf("lists of %s are not supported", kind)
	}
	if mem.Pattern != "" && mem.Type != TypeString {
		return errors.New("pattern set on non-string member")
	}
	if mem.Min != nil && mem.Max != nil && *mem.Min > *mem.Max {
		return fmt.Errorf("min %d greater than max %d", *mem.Min, *mem.Max)
	}
	return nil
}

// Enum returns the enum called name.
func (m *Model) Enum(name string) *Enum {
	return m.enums[name]
}

// Shape returns the shape called name, including operation shapes.
func (m *Model) Shape(name string) *Shape {
	return m.shapes[name]
}

// AllShapes returns the nested shapes followed by the input and output shape
// of every operation, in model order.
func (m *Model) AllShapes() []*Shape {
	out := make([]*Shape, 0, len(m.Shapes)+2*len(m.Operations))
	out = append(out, m.Shapes...)
	for _, op := range m.Operations {
		out = append(out, op.inputShape, op.outputShape)
	}
	return out
}

// InputShape returns the resolved input shape of op.
func (op *Operation) InputShape() *Shape { return op.inputShape }

// OutputShape returns the resolved output shape of op.
func (op *Operation) OutputShape() *Shape { return op.outputShape }
