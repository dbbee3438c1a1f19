package models

// UserAuth carries login credentials. The plaintext password is never logged,
// persisted or echoed back in a response.
type UserAuth struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
