// Package interests converts between the user-supplied interest list, its
// stored comma-joined form and the set used for matching.
package interests

import (
	"encoding/json"
	"strings"
)

// Separator joins interest tokens in the stored representation.
const Separator = ","

// Normalize lower-cases and trims every raw interest. Order and duplicates
// are kept; deduplication happens when the stored form is parsed.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, strings.ToLower(strings.TrimSpace(r)))
	}
	return out
}

// Join builds the stored representation of normalized tokens.
func Join(tokens []string) string {
	return strings.Join(tokens, Separator)
}

// Set is an insertion-ordered set of interest tokens.
// The empty token is never a member.
type Set struct {
	items []string
	index map[string]struct{}
}

// NewSet builds a set from tokens, skipping empty tokens and repeats.
func NewSet(tokens ...string) Set {
	s := Set{index: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		s.add(t)
	}
	return s
}

// Parse turns a stored interest string into a set. An empty string yields an
// empty set rather than a set holding one empty token.
func Parse(stored string) Set {
	if stored == "" {
		return NewSet()
	}
	return NewSet(strings.Split(stored, Separator)...)
}

func (s *Set) add(t string) {
	if t == "" {
		return
	}
	if _, ok := s.index[t]; ok {
		return
	}
	s.index[t] = struct{}{}
	s.items = append(s.items, t)
}

func (s Set) Len() int {
	return len(s.items)
}

func (s Set) Contains(t string) bool {
	_, ok := s.index[t]
	return ok
}

// Items returns a copy of the members in insertion order.
func (s Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Intersect returns the members of s that are also in other, in s's order.
func (s Set) Intersect(other Set) []string {
	var shared []string
	for _, t := range s.items {
		if other.Contains(t) {
			shared = append(shared, t)
		}
	}
	return shared
}

// String returns the stored representation of the set.
func (s Set) String() string {
	return Join(s.items)
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}
