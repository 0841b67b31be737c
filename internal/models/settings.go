package models

import "github.com/shopspring/decimal"

// AppSettings is the database shape of the single settings row.
type AppSettings struct {
	SettingsID string          `db:"settings_id"`
	PricePerKg decimal.Decimal `db:"price_per_kg"`
	Currency   string          `db:"currency"`
	Theme      string          `db:"theme"`
	AuditFields
}
