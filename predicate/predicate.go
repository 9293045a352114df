// Package predicate holds the per-column filter matchers. A matcher only sees
// the tokens it is called with and the record; it never reads shared state.
package predicate

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/datazip-inc/olake-tableview/datetree"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
	"github.com/datazip-inc/olake-tableview/utils/typeutils"
)

// Exact passes records whose field equals any of the tokens.
func Exact(field string) types.Matcher {
	return func(tokens []string, record types.Record) bool {
		if len(tokens) == 0 {
			return true
		}
		value, ok := record.Stringify(field)
		if !ok {
			return false
		}
		return slices.Contains(tokens, value)
	}
}

// Substring passes records whose field contains the search token, ignoring case.
// Blank search tokens are ignored.
func Substring(field string) types.Matcher {
	return func(tokens []string, record types.Record) bool {
		searches := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if token = strings.TrimSpace(token); token != "" {
				searches = append(searches, strings.ToLower(token))
			}
		}
		if len(searches) == 0 {
			return true
		}
		value, ok := record.Stringify(field)
		if !ok {
			return false
		}
		value = strings.ToLower(value)
		for _, search := range searches {
			if strings.Contains(value, search) {
				return true
			}
		}
		return false
	}
}

// Date passes records whose field falls on a selected day. Tree keys are
// resolved against tree; malformed tokens let every record through.
func Date(field string, tree []*types.DateTreeNode, loc *time.Location) types.Matcher {
	if loc == nil {
		loc = time.UTC
	}
	compiled := &compiledSelector{tree: tree, loc: loc}
	return func(tokens []string, record types.Record) bool {
		if len(tokens) == 0 {
			return true
		}
		match, ok := compiled.get(tokens)
		if !ok {
			return true
		}
		value, present := record.Value(field)
		if !present {
			return false
		}
		day, err := typeutils.ParseDay(value, loc)
		if err != nil {
			return false
		}
		return match(day)
	}
}

// compiledSelector keeps the decoded form of the last token list so a column
// decodes its tokens once per filter application instead of once per record.
type compiledSelector struct {
	tree []*types.DateTreeNode
	loc  *time.Location

	mu     sync.Mutex
	tokens []string
	match  func(day time.Time) bool
	ok     bool
}

func (c *compiledSelector) get(tokens []string) (func(day time.Time) bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tokens != nil && slices.Equal(c.tokens, tokens) {
		return c.match, c.ok
	}
	c.tokens = slices.Clone(tokens)
	c.match, c.ok = c.compile(tokens)
	return c.match, c.ok
}

func (c *compiledSelector) compile(tokens []string) (func(day time.Time) bool, bool) {
	selector, err := DecodeSelector(tokens, c.loc)
	if err != nil {
		logger.Warnf("date filter tokens %q: %s", tokens, err)
	}
	switch s := selector.(type) {
	case types.RangeSelector:
		return s.Contains, true
	case types.LeafSetSelector:
		days := datetree.ResolveDays(s.Keys, c.tree, c.loc)
		return func(day time.Time) bool {
			_, ok := days[day.Unix()]
			return ok
		}, true
	}
	// no-op or malformed: fail open
	return nil, false
}
