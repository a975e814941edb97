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

// Package model contains the request and result types of the identity
// provider API.
//
// The types are generated from api/model/identityprovider.yaml. Every member
// is optional: scalars are pointers, enums use their empty value, lists and
// maps are nil when absent. Each type has nil-safe getters, fluent setters
// returning the receiver, a deterministic String, structural Equal and Hash,
// and a Validate method checking the constraints documented in the model.
// Constraints are never enforced by the setters.
package model

//go:generate go run ../../cmd/modelgen --model ../../api/model/identityprovider.yaml --output . --package model --header ../../hack/boilerplate.go.txt --fixtures
