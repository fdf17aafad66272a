package model

// BlogPost is an article on the school blog. Featured is stored as 0 or 1.
type BlogPost struct {
	Seq         uint     `json:"-" gorm:"primaryKey"`
	ID          string   `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Title       string   `json:"title" gorm:"size:255;not null"`
	Slug        string   `json:"slug" gorm:"size:191;uniqueIndex;not null"`
	Excerpt     string   `json:"excerpt" gorm:"type:text;not null"`
	Content     string   `json:"content" gorm:"type:text;not null"`
	Author      string   `json:"author" gorm:"size:255;not null"`
	AuthorRole  string   `json:"authorRole" gorm:"size:255;not null"`
	Category    string   `json:"category" gorm:"size:100;not null;index"`
	Tags        []string `json:"tags" gorm:"type:text;serializer:json;not null"`
	Image       string   `json:"image" gorm:"type:text;not null"`
	Featured    int      `json:"featured" gorm:"default:0"`
	ReadTime    string   `json:"readTime" gorm:"size:50;not null"`
	PublishedAt string   `json:"publishedAt" gorm:"size:32"`
}
