package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageRequest struct {
	Current  int    `json:"current" validate:"gte=1"`
	PageSize int    `json:"page_size" validate:"gt=0"`
	Locale   string `mapstructure:"locale" validate:"omitempty,oneof=en ru"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(pageRequest{Current: 1, PageSize: 10, Locale: "ru"}))
	require.NoError(t, Validate(&pageRequest{Current: 2, PageSize: 5}))

	err := Validate(pageRequest{Current: 0, PageSize: 0, Locale: "de"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current must be 1 or greater")
	assert.Contains(t, err.Error(), "page_size must be greater than 0")
	assert.Contains(t, err.Error(), "locale must be one of [en ru]")
}

func TestValidateLocale(t *testing.T) {
	en := Validate(pageRequest{Current: 1, PageSize: 0})
	ru := ValidateLocale("ru", pageRequest{Current: 1, PageSize: 0})
	unknown := ValidateLocale("fr", pageRequest{Current: 1, PageSize: 0})

	require.Error(t, ru)
	assert.NotEqual(t, en.Error(), ru.Error())
	assert.Contains(t, ru.Error(), "page_size")
	assert.Equal(t, en.Error(), unknown.Error(), "unknown locales fall back to english")
}

func TestTranslator(t *testing.T) {
	assert.Equal(t, "en", Translator("en").Locale())
	assert.Equal(t, "ru", Translator("ru").Locale())
	assert.Equal(t, "en", Translator("").Locale())
}
