// Package datetree groups timestamped records into a year -> month -> day
// hierarchy with counts and resolves tree selections back into concrete days.
package datetree

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils"
	"github.com/datazip-inc/olake-tableview/utils/logger"
	"github.com/datazip-inc/olake-tableview/utils/typeutils"
)

// Options controls day normalization and labels.
type Options struct {
	// Location in which timestamps are cut into days, UTC when nil
	Location *time.Location
	// Locale of month names, en or ru
	Locale string
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// Build groups records by the calendar day of dateField. Records without a
// value or with an unparseable one are left out of the tree.
// Years are ordered most recent first, months and days ascending.
func Build(records []types.Record, dateField string, opts Options) []*types.DateTreeNode {
	if len(records) == 0 {
		return []*types.DateTreeNode{}
	}

	loc := opts.location()
	labels := newLabeler(opts.Locale)

	years := make(map[string]*types.DateTreeNode)
	months := make(map[string]*types.DateTreeNode)
	days := make(map[string]*types.DateTreeNode)
	skipped := 0

	for _, record := range records {
		value, ok := record.Value(dateField)
		if !ok {
			continue
		}
		day, err := typeutils.ParseDay(value, loc)
		if err != nil {
			skipped++
			logger.Debugf("skipping record from date tree on field %s: %s", dateField, err)
			continue
		}

		yearKey := YearKey(day.Year())
		yearNode, exists := years[yearKey]
		if !exists {
			yearNode = &types.DateTreeNode{
				Key:   yearKey,
				Label: labels.year(day.Year()),
				Level: types.YearLevel,
			}
			years[yearKey] = yearNode
		}
		yearNode.Count++

		monthKey := MonthKey(day.Year(), day.Month())
		monthNode, exists := months[monthKey]
		if !exists {
			monthNode = &types.DateTreeNode{
				Key:   monthKey,
				Label: labels.month(day.Month()),
				Level: types.MonthLevel,
			}
			months[monthKey] = monthNode
			yearNode.Children = append(yearNode.Children, monthNode)
		}
		monthNode.Count++

		dayKey := LeafKey(day)
		dayNode, exists := days[dayKey]
		if !exists {
			dayNode = &types.DateTreeNode{
				Key:    dayKey,
				Label:  labels.day(day),
				Level:  types.DayLevel,
				IsLeaf: true,
				Day:    day,
			}
			days[dayKey] = dayNode
			monthNode.Children = append(monthNode.Children, dayNode)
		}
		dayNode.Count++
	}

	if skipped > 0 {
		logger.Warnf("%d records have an unparseable %s and are not in the date tree", skipped, dateField)
	}

	tree := make([]*types.DateTreeNode, 0, len(years))
	for _, yearNode := range years {
		// keys are zero padded, so lexical order is calendar order
		sort.Slice(yearNode.Children, func(i, j int) bool {
			return yearNode.Children[i].Key < yearNode.Children[j].Key
		})
		for _, monthNode := range yearNode.Children {
			sort.Slice(monthNode.Children, func(i, j int) bool {
				return monthNode.Children[i].Key < monthNode.Children[j].Key
			})
		}
		tree = append(tree, yearNode)
	}
	sort.Slice(tree, func(i, j int) bool {
		return tree[i].Key > tree[j].Key
	})
	return tree
}

// YearKey is the node key of a year, e.g. year-2024
func YearKey(year int) string {
	return fmt.Sprintf("%s%04d", constants.YearKeyPrefix, year)
}

// MonthKey is the node key of a month, e.g. month-2024-03
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d-%02d", constants.MonthKeyPrefix, year, int(month))
}

// LeafKey is the node key of a day, e.g. date-2024-03-01
func LeafKey(day time.Time) string {
	return constants.DayKeyPrefix + day.Format("2006-01-02")
}

// ParseLeafKey returns midnight of the day named by a leaf key in loc
func ParseLeafKey(key string, loc *time.Location) (time.Time, bool) {
	level, ok := KeyLevel(key)
	if !ok || level != types.DayLevel {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation("2006-01-02", key[len(constants.DayKeyPrefix):], loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// KeyLevel reports which level a key names and whether it is well formed.
func KeyLevel(key string) (types.DateLevel, bool) {
	switch {
	case hasPrefix(key, constants.DayKeyPrefix):
		_, err := time.Parse("2006-01-02", key[len(constants.DayKeyPrefix):])
		return types.DayLevel, err == nil
	case hasPrefix(key, constants.MonthKeyPrefix):
		_, err := time.Parse("2006-01", key[len(constants.MonthKeyPrefix):])
		return types.MonthLevel, err == nil
	case hasPrefix(key, constants.YearKeyPrefix):
		_, err := strconv.Atoi(key[len(constants.YearKeyPrefix):])
		return types.YearLevel, err == nil && len(key) == len(constants.YearKeyPrefix)+4
	}
	return "", false
}

func hasPrefix(key, prefix string) bool {
	return len(key) > len(prefix) && key[:len(prefix)] == prefix
}

type labeler struct {
	locale string
}

func newLabeler(locale string) labeler {
	if locale == "" {
		locale = constants.DefaultLocale
	}
	return labeler{locale: locale}
}

// yearSuffixes are appended to year labels, "2024 год"
var yearSuffixes = map[string]string{
	"ru": "год",
}

// standaloneMonths holds nominative month names for locales whose wide
// month names are inflected for use inside a date ("марта" in "1 марта").
var standaloneMonths = map[string][12]string{
	"ru": {"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
}

func (l labeler) year(year int) string {
	if suffix, ok := yearSuffixes[l.locale]; ok {
		return fmt.Sprintf("%d %s", year, suffix)
	}
	return strconv.Itoa(year)
}

func (l labeler) month(month time.Month) string {
	if names, ok := standaloneMonths[l.locale]; ok {
		return names[month-1]
	}
	return utils.Translator(l.locale).MonthWide(month)
}

func (l labeler) day(day time.Time) string {
	return fmt.Sprintf("%d %s", day.Day(), utils.Translator(l.locale).MonthWide(day.Month()))
}
