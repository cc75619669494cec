package models

import (
	"time"
)

// Course represents a purchasable learning unit in the catalog.
type Course struct {
	ID            int64       `json:"id" db:"id" example:"1"`
	Title         string      `json:"title" db:"title" example:"Complete React Development Course"`
	Description   string      `json:"description" db:"description"`
	InstructorID  int64       `json:"instructorId" db:"instructor_id"`
	Price         float64     `json:"price" db:"price" example:"89.99"`
	OriginalPrice *float64    `json:"originalPrice,omitempty" db:"original_price"` // Nullable
	Image         string      `json:"image" db:"image"`
	Category      string      `json:"category" db:"category" example:"Web Development"`
	Level         CourseLevel `json:"level" db:"level" example:"Intermediate"`
	Duration      string      `json:"duration" db:"duration" example:"12 hours"`
	StudentsCount int         `json:"studentsCount" db:"students_count"` // Denormalized counter of active enrollments
	Rating        float64     `json:"rating" db:"rating" example:"4.8"`
	ReviewsCount  int         `json:"reviewsCount" db:"reviews_count"`
	Tags          []string    `json:"tags" db:"tags"`
	IsPopular     bool        `json:"isPopular" db:"is_popular"`
	IsBestseller  bool        `json:"isBestseller" db:"is_bestseller"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Instructor *User     `json:"instructor,omitempty"`
	Lessons    []*Lesson `json:"lessons,omitempty"`
}

// Lesson is a single entry of a course's ordered lesson list.
type Lesson struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    int64  `json:"courseId" db:"course_id"`
	Position    int    `json:"position" db:"position"`
	Title       string `json:"title" db:"title"`
	Duration    string `json:"duration" db:"duration"`
	VideoURL    string `json:"videoUrl,omitempty" db:"video_url"`
	Description string `json:"description,omitempty" db:"description"`
}
