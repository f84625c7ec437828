// Copyright 2024 The Serverless Registry Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stringset is an exceedingly simple set of strings.
package stringset

import "sort"

// Set is a set of strings. Not safe for concurrent mutation.
type Set map[string]struct{}

// New returns a new Set with the given capacity hint.
func New(sizeHint int) Set {
	return make(Set, sizeHint)
}

// NewFromSlice returns a new Set containing the given items.
func NewFromSlice(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add ensures the item is in the set. Returns true if it was added, false
// if it was already there.
func (s Set) Add(item string) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

// Del removes the item from the set. Returns true if it was there.
func (s Set) Del(item string) bool {
	if _, ok := s[item]; !ok {
		return false
	}
	delete(s, item)
	return true
}

// Has reports whether the item is in the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s)
}

// ToSortedSlice returns the items as a sorted slice.
func (s Set) ToSortedSlice() []string {
	out := make([]string, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}
