package domain

// Firm represents a single processing business. Every other entity is scoped
// to exactly one firm; there is no cross-firm aggregation anywhere.
type Firm struct {
	FirmID   string  `json:"firmID"`   // Primary Key (e.g., UUID)
	Name     string  `json:"name"`     // User-defined firm name
	Location *string `json:"location"` // Optional location
	AuditFields
}
