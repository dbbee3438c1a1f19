package models

// Session binds a bearer token to a username. At most one session exists per
// username: a new login upserts the record, invalidating the previous token.
// Sessions never expire on their own; logout deletes them.
type Session struct {
	Username string `bson:"username" json:"username"` // User's email
	Token    string `bson:"token" json:"token"`       // 32 hex chars (16 random bytes)
}
