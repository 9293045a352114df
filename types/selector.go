package types

import "time"

// DateLevel is the depth of a node in the date hierarchy
type DateLevel string

const (
	YearLevel  DateLevel = "year"
	MonthLevel DateLevel = "month"
	DayLevel   DateLevel = "date"
)

// DateTreeNode is one node of the year -> month -> day hierarchy.
// Count is the number of records under the node; leaves carry the normalized Day.
type DateTreeNode struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Level    DateLevel       `json:"level"`
	Count    int             `json:"count"`
	IsLeaf   bool            `json:"is_leaf,omitempty"`
	Day      time.Time       `json:"day,omitempty"`
	Children []*DateTreeNode `json:"children,omitempty"`
}

// DateSelector is either a RangeSelector or a LeafSetSelector.
type DateSelector interface {
	selector()
}

// RangeSelector selects every day in [Start, End], both inclusive.
type RangeSelector struct {
	Start time.Time
	End   time.Time
}

// LeafSetSelector selects the days behind a set of date tree keys. Keys may
// name years or months, which expand to their days.
type LeafSetSelector struct {
	Keys []string
}

func (RangeSelector) selector()   {}
func (LeafSetSelector) selector() {}

// Contains reports whether day falls within the range. All three values are
// expected to be normalized to midnight in the same location.
func (r RangeSelector) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}
