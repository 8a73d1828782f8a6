package models

// Follow represents a directed follower -> following edge between users
type Follow struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	FollowerID  uint `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uint `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
}
