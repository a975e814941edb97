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
	"time"
)

var fixtureTime = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

// shape is the method set shared by every generated type.
type shape interface {
	fmt.Stringer
	Hash() uint64
	Validate() error
}

type shapeFixture struct {
	name    string
	members int
	build   func() shape
	zero    func() shape
	equal   func(a, b shape) bool
}
