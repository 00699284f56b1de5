// Package setunion merges separator-delimited token lists into a sorted,
// duplicate-free union.
package setunion

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/btree"
)

// degree of the underlying B-tree.
const degree = 32

// Set is an ordered set of strings.
type Set struct {
	tree *btree.BTreeG[string]
}

// NewSet returns a set holding items.
func NewSet(items ...string) *Set {
	s := &Set{tree: btree.NewOrderedG[string](degree)}
	s.Add(items...)
	return s
}

// Add inserts items, ignoring those already present.
func (s *Set) Add(items ...string) {
	for _, item := range items {
		s.tree.ReplaceOrInsert(item)
	}
}

// Has reports whether item is in the set.
func (s *Set) Has(item string) bool {
	return s.tree.Has(item)
}

// Len returns the number of items.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Union returns a new set holding the items of both sets.
func (s *Set) Union(other *Set) *Set {
	result := &Set{tree: s.tree.Clone()}
	other.tree.Ascend(func(item string) bool {
		result.tree.ReplaceOrInsert(item)
		return true
	})
	return result
}

// Items returns the items in ascending order.
func (s *Set) Items() []string {
	items := make([]string, 0, s.tree.Len())
	s.tree.Ascend(func(item string) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Join returns the items in ascending order joined by sep.
func (s *Set) Join(sep string) string {
	return strings.Join(s.Items(), sep)
}

// Split splits input on every occurrence of sep. Empty tokens are kept, so
// input ending with sep contributes an empty token.
func Split(input, sep string) []string {
	return strings.Split(input, sep)
}

// Union splits left and right on sep and returns their sorted union joined
// by sep.
func Union(left, right, sep string) string {
	return NewSet(Split(left, sep)...).Union(NewSet(Split(right, sep)...)).Join(sep)
}

// UnionFiles is Union over the contents of two files.
func UnionFiles(leftPath, rightPath, sep string) (string, error) {
	left, err := os.ReadFile(leftPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", leftPath, err)
	}
	right, err := os.ReadFile(rightPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", rightPath, err)
	}
	return Union(string(left), string(right), sep), nil
}
