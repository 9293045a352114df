package datetree

import (
	"sort"
	"time"

	"github.com/datazip-inc/olake-tableview/types"
)

// KeySet is a set of date tree keys
type KeySet map[string]struct{}

// Has reports membership
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in ascending order
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ResolveLeafKeys expands year and month keys to every day leaf beneath them
// and unions in day keys given directly, even when the tree does not hold them.
// Keys that name nothing contribute nothing.
func ResolveLeafKeys(selected []string, tree []*types.DateTreeNode) KeySet {
	leaves := make(KeySet)
	for _, key := range selected {
		if node := Find(tree, key); node != nil {
			collectLeaves(node, leaves)
			continue
		}
		if level, ok := KeyLevel(key); ok && level == types.DayLevel {
			leaves[key] = struct{}{}
		}
	}
	return leaves
}

// ResolveDays resolves selected keys to the set of days they cover, as
// midnight in loc. Days are keyed by their unix second for lookups.
func ResolveDays(selected []string, tree []*types.DateTreeNode, loc *time.Location) map[int64]time.Time {
	days := make(map[int64]time.Time)
	for key := range ResolveLeafKeys(selected, tree) {
		day, ok := ParseLeafKey(key, loc)
		if !ok {
			continue
		}
		days[day.Unix()] = day
	}
	return days
}

// AllLeafKeys returns every day key in tree order; it backs "select all".
func AllLeafKeys(tree []*types.DateTreeNode) []string {
	var keys []string
	Walk(tree, func(node *types.DateTreeNode) bool {
		if node.IsLeaf {
			keys = append(keys, node.Key)
		}
		return true
	})
	return keys
}

// Find returns the node with key, or nil
func Find(tree []*types.DateTreeNode, key string) *types.DateTreeNode {
	var found *types.DateTreeNode
	Walk(tree, func(node *types.DateTreeNode) bool {
		if node.Key == key {
			found = node
			return false
		}
		return true
	})
	return found
}

// Walk visits nodes depth first in tree order until fn returns false.
func Walk(tree []*types.DateTreeNode, fn func(node *types.DateTreeNode) bool) {
	walk(tree, fn)
}

func walk(nodes []*types.DateTreeNode, fn func(node *types.DateTreeNode) bool) bool {
	for _, node := range nodes {
		if !fn(node) {
			return false
		}
		if !walk(node.Children, fn) {
			return false
		}
	}
	return true
}

func collectLeaves(node *types.DateTreeNode, into KeySet) {
	if node.IsLeaf {
		into[node.Key] = struct{}{}
		return
	}
	for _, child := range node.Children {
		collectLeaves(child, into)
	}
}
