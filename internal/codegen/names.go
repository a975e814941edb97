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
	"strings"
	"unicode"
)

var scalarTypes = map[MemberType]string{
	TypeString:    "string",
	TypeBoolean:   "bool",
	TypeInteger:   "int32",
	TypeLong:      "int64",
	TypeTimestamp: "time.Time",
}

// isPointerScalar reports whether m is stored as a pointer so that an unset
// value can be told apart from the zero value.
func isPointerScalar(m *Member) bool {
	_, ok := scalarTypes[m.Type]
	return ok
}

// elemType returns the Go type of one list element.
func elemType(m *Member) string {
	switch m.Element {
	case TypeEnum, TypeStructure:
		return m.Target
	default:
		return scalarTypes[m.Element]
	}
}

// goType returns the Go type of the struct field holding m.
func goType(m *Member) string {
	switch m.Type {
	case TypeEnum:
		return m.Target
	case TypeStructure:
		return "*" + m.Target
	case TypeList:
		return "[]" + elemType(m)
	case TypeMap:
		return "map[string]string"
	default:
		return "*" + scalarTypes[m.Type]
	}
}

// valueType returns the type accepted by the setter and returned by the
// getter of m.
func valueType(m *Member) string {
	if isPointerScalar(m) {
		return scalarTypes[m.Type]
	}
	return goType(m)
}

func zeroValue(m *Member) string {
	switch m.Type {
	case TypeString, TypeEnum:
		return `""`
	case TypeBoolean:
		return "false"
	case TypeInteger, TypeLong:
		return "0"
	case TypeTimestamp:
		return "time.Time{}"
	default:
		return "nil"
	}
}

// enumConst names the constant for value v of enum typ: SIGN_IN becomes
// TypSignIn and phone_number becomes TypPhoneNumber.
func enumConst(typ, v string) string {
	var b strings.Builder
	b.WriteString(typ)
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' ' || r == ':'
	})
	for _, part := range parts {
		if strings.ToUpper(part) == part {
			part = strings.ToLower(part)
		}
		rs := []rune(part)
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	return b.String()
}
