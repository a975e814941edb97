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
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when an entry is added to a map member that
// already holds the key.
var ErrDuplicateKey = errors.New("duplicate key")

func duplicateKey(member, key string) error {
	return fmt.Errorf("%s: %w %q", member, ErrDuplicateKey, key)
}
