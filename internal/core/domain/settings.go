package domain

import "github.com/shopspring/decimal"

// Theme is the display theme preference stored with the app settings.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the supported values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// AppSettings holds process-wide configuration. PricePerKg is applied at
// work-log entry time only, never retroactively. Currency is a display label.
type AppSettings struct {
	SettingsID string          `json:"settingsId"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Currency   string          `json:"currency"`
	Theme      Theme           `json:"theme"`
	AuditFields
}
