package models

// User is the database shape of an operator account.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
