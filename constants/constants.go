package constants

import "time"

const (
	DefaultIDField        = "id"
	DefaultTitleField     = "title"
	DefaultStatusField    = "status"
	DefaultDateField      = "createdAt"
	DefaultActionsKey     = "actions"
	DefaultPageSize       = 10
	DefaultLocale         = "en"
	DefaultTimezone       = "UTC"
	DefaultDateLayout     = "02.01.2006"
	DefaultDateTimeLayout = "02.01.2006 15:04"
	DefaultTotalTemplate  = "%d-%d of %d"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultRecordsURL     = "https://api.fake-rest.refine.dev/posts"

	// date filter tokens exchanged with the UI
	RangeTokenPrefix    = "range:"
	RangeTokenSeparator = "|"
	ClearToken          = "clear"
	YearKeyPrefix       = "year-"
	MonthKeyPrefix      = "month-"
	DayKeyPrefix        = "date-"

	// viper keys
	Records   = "RECORDS"
	LogLevel  = "LOG_LEVEL"
	LogFile   = "LOG_FILE"
	EnvPrefix = "TABLEVIEW"
)

var PageSizeOptions = []int{5, 10, 20, 50}
