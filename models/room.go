package models

// Room is a bookable room. Reference entity only; booking creation checks
// existence and nothing else.
type Room struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Capacity    int      `bson:"capacity" json:"capacity"` // >= 1, defaults to 1
	Images      []string `bson:"images" json:"images"`
}
