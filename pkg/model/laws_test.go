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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Generated shapes", func() {
	for _, f := range generatedFixtures {
		Context(f.name, func() {
			It("is equal to itself and to an identical value", func() {
				a, b := f.build(), f.build()
				Expect(f.equal(a, a)).To(BeTrue())
				Expect(f.equal(a, b)).To(BeTrue())
				Expect(f.equal(b, a)).To(BeTrue())
			})

			It("hashes equal values identically", func() {
				a, b := f.build(), f.build()
				Expect(a.Hash()).To(Equal(b.Hash()))
				Expect(f.zero().Hash()).To(Equal(f.zero().Hash()))
			})

			It("renders a deterministic string", func() {
				a := f.build()
				Expect(a.String()).To(Equal(f.build().String()))
				Expect(a.String()).To(HavePrefix("{"))
				Expect(a.String()).To(HaveSuffix("}"))
				Expect(f.zero().String()).To(Equal("{}"))
			})

			It("accepts a fully populated value", func() {
				Expect(f.build().Validate()).To(Succeed())
			})

			if f.members > 0 {
				It("tells a populated value apart from an empty one", func() {
					a, z := f.build(), f.zero()
					Expect(f.equal(a, z)).To(BeFalse())
					Expect(f.equal(z, a)).To(BeFalse())
					Expect(a.Hash()).NotTo(Equal(z.Hash()))
					Expect(a.String()).NotTo(Equal("{}"))
				})
			}
		})
	}
})
