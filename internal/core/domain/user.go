package domain

// User is an API account. Its ID is recorded as the actor on audit entries.
type User struct {
	UserID       int64  `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Timestamps
}
