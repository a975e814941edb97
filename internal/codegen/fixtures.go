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
	"fmt"
	"strings"
)

// renderFixtures emits a constructor per shape returning a value with every
// member set, plus the generatedFixtures table consumed by the package tests.
// The test package provides fixtureTime, shape and shapeFixture.
func renderFixtures(p *printer, m *Model) {
	shapes := m.AllShapes()
	for _, s := range shapes {
		p.P("func fixture", s.Name, "() *", s.Name, " {")
		if len(s.Members) == 0 {
			p.P("\treturn new(", s.Name, ")")
			p.P("}")
			p.P()
			continue
		}
		p.P("\treturn new(", s.Name, ").")
		for i, mem := range s.Members {
			suffix := "."
			if i == len(s.Members)-1 {
				suffix = ""
			}
			p.P("\t\tSet", mem.Name, "(", fixtureValue(m, mem), ")", suffix)
		}
		p.P("}")
		p.P()
	}

	p.P("var generatedFixtures = []shapeFixture{")
	for _, s := range shapes {
		p.P("\t{")
		p.P("\t\tname:    ", fmt.Sprintf("%q", s.Name), ",")
		p.P("\t\tmembers: ", len(s.Members), ",")
		p.P("\t\tbuild:   func() shape { return fixture", s.Name, "() },")
		p.P("\t\tzero:    func() shape { return new(", s.Name, ") },")
		p.P("\t\tequal:   func(a, b shape) bool { return a.(*", s.Name, ").Equal(b.(*", s.Name, ")) },")
		p.P("\t},")
	}
	p.P("}")
}

func fixtureValue(m *Model, mem *Member) string {
	switch mem.Type {
	case TypeString:
		return fmt.Sprintf("%q", fixtureString(mem))
	case TypeBoolean:
		return "true"
	case TypeInteger, TypeLong:
		return fmt.Sprint(fixtureInt(mem))
	case TypeTimestamp:
		return "fixtureTime"
	case TypeEnum:
		return enumConst(mem.Target, m.Enum(mem.Target).Values[0])
	case TypeStructure:
		return "fixture" + mem.Target + "()"
	case TypeMap:
		return `map[string]string{"key": "value"}`
	}

	switch mem.Element {
	case TypeEnum:
		return "[]" + mem.Target + "{" + enumConst(mem.Target, m.Enum(mem.Target).Values[0]) + "}"
	case TypeStructure:
		return "[]" + mem.Target + "{*fixture" + mem.Target + "()}"
	default:
		return fmt.Sprintf("[]string{%q}", fixtureString(mem))
	}
}

// fixtureString returns the example of mem, or a value derived from its name
// that fits the length bounds.
func fixtureString(mem *Member) string {
	if mem.Example != "" {
		return mem.Example
	}
	v := mem.Name + "-value"
	if mem.Type == TypeList {
		return v
	}
	if mem.Max != nil && int64(len(v)) > *mem.Max {
		v = v[:*mem.Max]
	}
	if mem.Min != nil && int64(len(v)) < *mem.Min {
		v += strings.Repeat("x", int(*mem.Min)-len(v))
	}
	return v
}

func fixtureInt(mem *Member) int64 {
	v := int64(1)
	if mem.Min != nil {
		v = *mem.Min
	}
	if mem.Max != nil && v > *mem.Max {
		v = *mem.Max
	}
	return v
}
