package models

// Like represents a like on a tweet. At most one like may exist per
// (user, tweet) pair, enforced by lookup-before-insert.
type Like struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"index"`
	TweetID uint `json:"tweet_id" gorm:"index"`
}
