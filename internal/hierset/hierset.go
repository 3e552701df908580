// Copyright 2026 The JSComp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hierset provides a set whose membership includes the members of a
// chain of parent sets.
//
// A child set never modifies its parent. Values are only added, never
// removed: a set describing a branch is discarded as a whole when the branch
// is left.
package hierset

// A Set holds the values added to it locally and, for the purpose of
// membership, the values of its ancestors. The zero value is an empty set
// without a parent.
type Set[T comparable] struct {
	parent *Set[T]
	local  map[T]struct{}
}

// New returns an empty set chained to parent, which may be nil.
func New[T comparable](parent *Set[T]) *Set[T] {
	return &Set[T]{parent: parent}
}

// Parent returns the set s is chained to, or nil.
func (s *Set[T]) Parent() *Set[T] {
	return s.parent
}

// Add adds v to s. It reports false, leaving s unchanged, if v is already a
// member of s or of any of its ancestors.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.local[v]; ok || s.InAncestors(v) {
		return false
	}
	if s.local == nil {
		s.local = make(map[T]struct{})
	}
	s.local[v] = struct{}{}
	return true
}

// InAncestors reports whether any ancestor of s, not counting s itself,
// holds v.
func (s *Set[T]) InAncestors(v T) bool {
	for p := s.parent; p != nil; p = p.parent {
		if _, ok := p.local[v]; ok {
			return true
		}
	}
	return false
}

// Contains reports whether v was added to s or to one of its ancestors.
func (s *Set[T]) Contains(v T) bool {
	if _, ok := s.local[v]; ok {
		return true
	}
	return s.InAncestors(v)
}

// Len returns the number of values added to s itself.
func (s *Set[T]) Len() int {
	return len(s.local)
}
