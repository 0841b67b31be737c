package models

// Firm is the database shape of a processing business.
type Firm struct {
	FirmID   string  `db:"firm_id"`
	Name     string  `db:"name"`
	Location *string `db:"location"`
	AuditFields
}
