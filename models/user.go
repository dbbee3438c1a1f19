package models

// User represents a registered user account. Accounts are provisioned
// out-of-band; the API only ever reads them. The password digest and salt
// are never serialised into responses.
type User struct {
	ID          string   `bson:"id" json:"id"` // 32-char opaque identifier
	Password    string   `bson:"password" json:"-"`
	Salt        string   `bson:"salt" json:"-"`
	Email       string   `bson:"email" json:"email"` // Unique, doubles as login username
	Name        string   `bson:"name" json:"name"`
	Image       *string  `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Rooms       []string `bson:"rooms" json:"rooms"` // Rooms the user may book (informational)
}

// Valid reports whether the record carries every field required to act as an
// authenticated principal.
func (u User) Valid() bool {
	return u.ID != "" && u.Password != "" && u.Salt != "" && u.Email != ""
}
