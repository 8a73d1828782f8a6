package models

// User represents an account identified by an opaque API key
type User struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	APIKey string `json:"-" gorm:"column:apikey;uniqueIndex;not null"` // Opaque credential, unique across all users
	Name   string `json:"name" gorm:"size:50;not null"`
}

// UserCompact is the shape users take inside follower/following lists
type UserCompact struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Name: u.Name}
}

// UserView is the profile shape returned by the user endpoints
type UserView struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Followers []UserCompact `json:"followers"`
	Following []UserCompact `json:"following"`
}
