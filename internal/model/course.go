package model

// Course levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// DefaultCourseRating is applied when a course is created without a rating.
const DefaultCourseRating = 5

// CourseModule is one ordered section of a course syllabus.
type CourseModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LessonCount int    `json:"lessons"`
	Duration    string `json:"duration"`
}

// Course is a catalog entry addressed publicly by its slug.
type Course struct {
	Seq         uint           `json:"-" gorm:"primaryKey"`
	ID          string         `json:"id" gorm:"type:char(36);uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Slug        string         `json:"slug" gorm:"size:191;uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Level       string         `json:"level" gorm:"size:20;not null;index"`
	Duration    string         `json:"duration" gorm:"size:50;not null"`
	Price       string         `json:"price" gorm:"size:50;not null"`
	Students    int            `json:"students" gorm:"not null;default:0"`
	Rating      int            `json:"rating" gorm:"not null;default:5"`
	Image       string         `json:"image" gorm:"type:text;not null"`
	Modules     []CourseModule `json:"modules" gorm:"type:text;serializer:json;not null"`
}

// ApplyDefaults fills fields left unset by the caller.
func (c *Course) ApplyDefaults() {
	if c.Rating == 0 {
		c.Rating = DefaultCourseRating
	}
	if c.Modules == nil {
		c.Modules = []CourseModule{}
	}
}
