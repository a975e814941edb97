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

package model

import (
	"fmt"
	"regexp"
	"slices"
	"sync"
	"unicode/utf8"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Validator is implemented by every generated type.
type Validator interface {
	Validate() error
}

// stringRule holds the constraints of a string member. Lengths count runes;
// a zero max means unbounded.
type stringRule struct {
	required  bool
	sensitive bool
	min       int
	max       int
	pattern   string
}

// intRule holds the constraints of an integer member.
type intRule struct {
	required bool
	hasMin   bool
	hasMax   bool
	min      int64
	max      int64
}

// listRule holds the constraints of a list member. Bounds count items; a zero
// max means unbounded.
type listRule struct {
	required bool
	min      int
	max      int
}

var patterns sync.Map // pattern -> *regexp.Regexp

func matchPattern(pattern, value string) bool {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp).MatchString(value)
	}
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	patterns.Store(pattern, re)
	return re.MatchString(value)
}

func validateRequired(p *field.Path, present bool) field.ErrorList {
	if present {
		return nil
	}
	return field.ErrorList{field.Required(p, "")}
}

func validateString(p *field.Path, v *string, r stringRule) field.ErrorList {
	if v == nil {
		if r.required {
			return field.ErrorList{field.Required(p, "")}
		}
		return nil
	}

	var shown any = *v
	if r.sensitive {
		shown = sensitiveValue
	}

	var errs field.ErrorList
	n := utf8.RuneCountInString(*v)
	if n < r.min {
		errs = append(errs, field.Invalid(p, shown, fmt.Sprintf("must be at least %d characters", r.min)))
	}
	if r.max > 0 && n > r.max {
		errs = append(errs, field.Invalid(p, shown, fmt.Sprintf("must be at most %d characters", r.max)))
	}
	if r.pattern != "" && !matchPattern(r.pattern, *v) {
		errs = append(errs, field.Invalid(p, shown, "must match pattern "+r.pattern))
	}
	return errs
}

func validateInt[T int32 | int64](p *field.Path, v *T, r intRule) field.ErrorList {
	if v == nil {
		if r.required {
			return field.ErrorList{field.Required(p, "")}
		}
		return nil
	}

	var errs field.ErrorList
	if r.hasMin && int64(*v) < r.min {
		errs = append(errs, field.Invalid(p, *v, fmt.Sprintf("must be greater than or equal to %d", r.min)))
	}
	if r.hasMax && int64(*v) > r.max {
		errs = append(errs, field.Invalid(p, *v, fmt.Sprintf("must be less than or equal to %d", r.max)))
	}
	return errs
}

func validateEnum[T interface {
	~string
	Values() []T
}](p *field.Path, v T, required bool) field.ErrorList {
	if v == "" {
		if required {
			return field.ErrorList{field.Required(p, "")}
		}
		return nil
	}
	values := v.Values()
	if slices.Contains(values, v) {
		return nil
	}
	supported := make([]string, len(values))
	for i, s := range values {
		supported[i] = string(s)
	}
	return field.ErrorList{field.NotSupported(p, string(v), supported)}
}

func validateCount(p *field.Path, present bool, n int, r listRule) field.ErrorList {
	if !present {
		if r.required {
			return field.ErrorList{field.Required(p, "")}
		}
		return nil
	}
	if n < r.min {
		return field.ErrorList{field.Invalid(p, n, fmt.Sprintf("must have at least %d items", r.min))}
	}
	if r.max > 0 && n > r.max {
		return field.ErrorList{field.TooMany(p, n, r.max)}
	}
	return nil
}

func validateEnums[T interface {
	~string
	Values() []T
}](p *field.Path, v []T, r listRule) field.ErrorList {
	errs := validateCount(p, v != nil, len(v), r)
	for i, e := range v {
		if e == "" {
			errs = append(errs, field.Invalid(p.Index(i), "", "must not be empty"))
			continue
		}
		errs = append(errs, validateEnum(p.Index(i), e, false)...)
	}
	return errs
}

func validateElems[E any, P interface {
	*E
	validate(*field.Path) field.ErrorList
}](p *field.Path, v []E, r listRule) field.ErrorList {
	errs := validateCount(p, v != nil, len(v), r)
	for i := range v {
		errs = append(errs, P(&v[i]).validate(p.Index(i))...)
	}
	return errs
}
