package model

// Contact is a message submitted through the contact form.
type Contact struct {
	Seq       uint   `json:"-" gorm:"primaryKey"`
	ID        string `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Name      string `json:"name" gorm:"size:255;not null"`
	Email     string `json:"email" gorm:"size:255;not null"`
	Subject   string `json:"subject" gorm:"size:255;not null"`
	Message   string `json:"message" gorm:"type:text;not null"`
	CreatedAt string `json:"createdAt" gorm:"size:32"`
}
