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
	"encoding/binary"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// sensitiveValue replaces members marked sensitive in String output.
const sensitiveValue = "*** Sensitive Data Redacted ***"

// Equality helpers. A nil pointer, slice or map is absent and only equals
// another absent value.

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalValues[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

func equalMap(a, b map[string]string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return maps.Equal(a, b)
}

func equalList[E any, P interface {
	*E
	Equal(P) bool
}](a, b []E) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !P(&a[i]).Equal(P(&b[i])) {
			return false
		}
	}
	return true
}

// hasher feeds members into an xxhash digest. Every value is prefixed with a
// presence marker or length so adjacent members cannot collide.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) Sum64() uint64 {
	return h.d.Sum64()
}

func (h *hasher) marker(b byte) {
	h.buf[0] = b
	_, _ = h.d.Write(h.buf[:1])
}

func (h *hasher) absent()  { h.marker(0) }
func (h *hasher) present() { h.marker(1) }

func (h *hasher) uint(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) text(s string) {
	h.uint(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) str(v *string) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.text(*v)
}

func (h *hasher) boolean(v *bool) {
	switch {
	case v == nil:
		h.absent()
	case *v:
		h.marker(2)
	default:
		h.marker(3)
	}
}

func (h *hasher) i32(v *int32) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(*v))
}

func (h *hasher) i64(v *int64) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(*v))
}

func (h *hasher) timestamp(v *time.Time) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(v.UnixNano()))
}

func (h *hasher) enum(v string) {
	h.text(v)
}

func (h *hasher) strs(v []string) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(len(v)))
	for _, s := range v {
		h.text(s)
	}
}

func (h *hasher) stringMap(m map[string]string) {
	if m == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(len(m)))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		h.text(k)
		h.text(m[k])
	}
}

func hashEnums[T ~string](h *hasher, v []T) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(len(v)))
	for _, s := range v {
		h.text(string(s))
	}
}

func hashList[E any, P interface {
	*E
	hash(*hasher)
}](h *hasher, v []E) {
	if v == nil {
		h.absent()
		return
	}
	h.present()
	h.uint(uint64(len(v)))
	for i := range v {
		P(&v[i]).hash(h)
	}
}

// stringWriter renders the debug form {Member: value,Member: value}. Absent
// members are skipped.
type stringWriter struct {
	b strings.Builder
	n int
}

func newStringWriter() *stringWriter {
	w := &stringWriter{}
	w.b.WriteByte('{')
	return w
}

func (w *stringWriter) String() string {
	w.b.WriteByte('}')
	return w.b.String()
}

func (w *stringWriter) field(name, value string) {
	if w.n > 0 {
		w.b.WriteByte(',')
	}
	w.n++
	w.b.WriteString(name)
	w.b.WriteString(": ")
	w.b.WriteString(value)
}

func (w *stringWriter) sensitive(name string, present bool) {
	if present {
		w.field(name, sensitiveValue)
	}
}

func (w *stringWriter) str(name string, v *string) {
	if v != nil {
		w.field(name, *v)
	}
}

func (w *stringWriter) boolean(name string, v *bool) {
	if v != nil {
		w.field(name, strconv.FormatBool(*v))
	}
}

func (w *stringWriter) i32(name string, v *int32) {
	if v != nil {
		w.field(name, strconv.FormatInt(int64(*v), 10))
	}
}

func (w *stringWriter) i64(name string, v *int64) {
	if v != nil {
		w.field(name, strconv.FormatInt(*v, 10))
	}
}

func (w *stringWriter) timestamp(name string, v *time.Time) {
	if v != nil {
		w.field(name, v.Format(time.RFC3339Nano))
	}
}

func (w *stringWriter) enum(name, v string) {
	if v != "" {
		w.field(name, v)
	}
}

func (w *stringWriter) strs(name string, v []string) {
	if v != nil {
		w.field(name, "["+strings.Join(v, ", ")+"]")
	}
}

func (w *stringWriter) stringMap(name string, m map[string]string) {
	if m == nil {
		return
	}
	entries := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, k+"="+m[k])
	}
	w.field(name, "{"+strings.Join(entries, ", ")+"}")
}

func writeEnums[T ~string](w *stringWriter, name string, v []T) {
	if v == nil {
		return
	}
	items := make([]string, len(v))
	for i, s := range v {
		items[i] = string(s)
	}
	w.strs(name, items)
}

func writeList[E any, P interface {
	*E
	String() string
}](w *stringWriter, name string, v []E) {
	if v == nil {
		return
	}
	items := make([]string, len(v))
	for i := range v {
		items[i] = P(&v[i]).String()
	}
	w.strs(name, items)
}
