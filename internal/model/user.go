package model

// User represents a staff account. Users are seeded, never served over HTTP.
type User struct {
	Seq          uint   `json:"-" gorm:"primaryKey"`
	ID           string `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Username     string `json:"username" gorm:"size:191;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
}
