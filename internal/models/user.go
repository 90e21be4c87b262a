package models

// User represents a row of the users table.
type User struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"` // bcrypt hash
	Timestamps
}
