package models

// Media represents an uploaded file. A row is created unattached at upload
// time and claimed by a tweet later, so TweetID stays nullable.
type Media struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FilePath string `json:"file_path" gorm:"not null"` // Storage-local location
	FileURL  string `json:"file_url" gorm:"not null"`  // Externally resolvable address
	TweetID  *uint  `json:"tweet_id" gorm:"index"`
}
