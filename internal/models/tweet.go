package models

// Tweet represents a post authored by a user
type Tweet struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	AuthorID uint   `json:"author_id" gorm:"index;not null"` // Immutable after creation
	Content  string `json:"content" gorm:"size:280;not null"`
}

// CreateTweetRequest defines the request body for creating a new tweet.
// Emptiness of the payload is checked by the handler on the decoded JSON
// object, not on these fields.
type CreateTweetRequest struct {
	TweetData     string `json:"tweet_data" validate:"max=280"`
	TweetMediaIDs []uint `json:"tweet_media_ids,omitempty"`
}

// LikeView is the shape likes take inside a feed entry
type LikeView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// TweetView is a single denormalized feed entry
type TweetView struct {
	ID          uint        `json:"id"`
	Content     string      `json:"content"`
	Attachments []string    `json:"attachments"`
	Author      UserCompact `json:"author"`
	Likes       []LikeView  `json:"likes"`
}
