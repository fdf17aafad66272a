package model

// Research project statuses used by the seed set. Status is free text.
const (
	ResearchStatusActive     = "Active"
	ResearchStatusRecruiting = "Recruiting"
)

// ResearchProject is a research initiative run with external partners.
type ResearchProject struct {
	Seq         uint     `json:"-" gorm:"primaryKey"`
	ID          string   `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Title       string   `json:"title" gorm:"size:255;not null"`
	Description string   `json:"description" gorm:"type:text;not null"`
	Status      string   `json:"status" gorm:"size:50;not null;index"`
	Category    string   `json:"category" gorm:"size:100;not null"`
	Partners    []string `json:"partners" gorm:"type:text;serializer:json;not null"`
	Image       string   `json:"image" gorm:"type:text;not null"`
	Duration    string   `json:"duration" gorm:"size:50;not null"`
	CreatedAt   string   `json:"createdAt" gorm:"size:32"`
}
