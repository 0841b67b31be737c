package domain

// User represents an operator account. The backend is effectively
// single-writer; users exist so mutations carry an identity for audit fields.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
