package model

// StudentProject is a showcase entry built by a student.
type StudentProject struct {
	Seq          uint     `json:"-" gorm:"primaryKey"`
	ID           string   `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Title        string   `json:"title" gorm:"size:255;not null"`
	Description  string   `json:"description" gorm:"type:text;not null"`
	Student      string   `json:"student" gorm:"size:255;not null"`
	Course       string   `json:"course" gorm:"size:255;not null"`
	Category     string   `json:"category" gorm:"size:100;not null;index"`
	Technologies []string `json:"technologies" gorm:"type:text;serializer:json;not null"`
	Image        string   `json:"image" gorm:"type:text;not null"`
	GithubURL    *string  `json:"githubUrl" gorm:"type:text"`
	LiveURL      *string  `json:"liveUrl" gorm:"type:text"`
	Stars        int      `json:"stars" gorm:"default:0"`
	Views        int      `json:"views" gorm:"default:0"`
	Featured     int      `json:"featured" gorm:"default:0"`
	CompletedAt  string   `json:"completedAt" gorm:"size:32"`
}
