package predicate

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/datetree"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/typeutils"
)

// DecodeSelector turns the filter tokens of a date column into a selector.
//
// A nil selector with a nil error means the tokens do not filter anything
// (no tokens or the clear token). Tokens are either a single
// "range:<start>|<end>" token or a list of date tree keys; unrecognised keys
// are dropped and reported in the returned error together with the selector
// built from the rest. When nothing usable remains the error wraps
// types.ErrMalformedToken and the selector is nil.
func DecodeSelector(tokens []string, loc *time.Location) (types.DateSelector, error) {
	if len(tokens) == 0 || tokens[0] == constants.ClearToken {
		return nil, nil
	}
	if strings.HasPrefix(tokens[0], constants.RangeTokenPrefix) {
		return decodeRange(tokens[0], loc)
	}

	var dropped error
	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := datetree.KeyLevel(token); !ok {
			dropped = multierror.Append(dropped, fmt.Errorf("%w: unknown date key %q", types.ErrMalformedToken, token))
			continue
		}
		keys = append(keys, token)
	}
	if len(keys) == 0 {
		return nil, dropped
	}
	return types.LeafSetSelector{Keys: keys}, dropped
}

func decodeRange(token string, loc *time.Location) (types.DateSelector, error) {
	body := strings.TrimPrefix(token, constants.RangeTokenPrefix)
	parts := strings.Split(body, constants.RangeTokenSeparator)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: range %q needs exactly two bounds", types.ErrMalformedToken, token)
	}
	start, err := typeutils.ParseDay(parts[0], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: range start: %s", types.ErrMalformedToken, err)
	}
	end, err := typeutils.ParseDay(parts[1], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: range end: %s", types.ErrMalformedToken, err)
	}
	if start.After(end) {
		start, end = end, start
	}
	return types.RangeSelector{Start: start, End: end}, nil
}

// EncodeSelector is the inverse of DecodeSelector, used when handing a
// selection back to the UI. A nil selector encodes to no tokens.
func EncodeSelector(selector types.DateSelector) []string {
	switch s := selector.(type) {
	case types.RangeSelector:
		return []string{constants.RangeTokenPrefix + s.Start.Format("2006-01-02") + constants.RangeTokenSeparator + s.End.Format("2006-01-02")}
	case types.LeafSetSelector:
		return append([]string(nil), s.Keys...)
	}
	return nil
}
