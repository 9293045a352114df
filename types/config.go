package types

import (
	"fmt"
	"slices"
	"time"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/utils"
)

// Config is the runtime configuration of a table view.
type Config struct {
	Records         string        `json:"records" mapstructure:"records"`
	PageSize        int           `json:"page_size" mapstructure:"page_size" validate:"gt=0"`
	PageSizeOptions []int         `json:"page_size_options" mapstructure:"page_size_options" validate:"dive,gt=0"`
	Locale          string        `json:"locale" mapstructure:"locale" validate:"oneof=en ru"`
	Timezone        string        `json:"timezone" mapstructure:"timezone" validate:"required"`
	DateLayout      string        `json:"date_layout" mapstructure:"date_layout" validate:"required"`
	TotalTemplate   string        `json:"total_template" mapstructure:"total_template" validate:"required"`
	HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout" validate:"gte=0"`
	Columns         []ColumnDef   `json:"columns" mapstructure:"columns" validate:"dive"`
}

// DefaultConfig returns the configuration of the stock posts table.
func DefaultConfig() *Config {
	return &Config{
		Records:         constants.DefaultRecordsURL,
		PageSize:        constants.DefaultPageSize,
		PageSizeOptions: slices.Clone(constants.PageSizeOptions),
		Locale:          constants.DefaultLocale,
		Timezone:        constants.DefaultTimezone,
		DateLayout:      constants.DefaultDateTimeLayout,
		TotalTemplate:   constants.DefaultTotalTemplate,
		HTTPTimeout:     constants.DefaultHTTPTimeout,
		Columns:         DefaultColumns(),
	}
}

// Validate checks struct constraints and the cross-field rules, reporting
// every failure at once.
func (c *Config) Validate() error {
	return utils.ErrExecSequential(
		func() error {
			return utils.Validate(c)
		},
		utils.ErrExecFormat("invalid timezone: %w", func() error {
			if c.Timezone == "" {
				return nil
			}
			_, err := time.LoadLocation(c.Timezone)
			return err
		}),
		func() error {
			if len(c.PageSizeOptions) > 0 && !slices.Contains(c.PageSizeOptions, c.PageSize) {
				return fmt.Errorf("page_size %d is not one of page_size_options %v", c.PageSize, c.PageSizeOptions)
			}
			return nil
		},
	)
}

// Location resolves Timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil || c.Timezone == "" {
		return time.UTC
	}
	return loc
}
