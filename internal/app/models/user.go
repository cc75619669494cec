package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Sarah Johnson"`                   // Display name
	Email     string    `json:"email" db:"email" example:"sarah@coursehub.io"`            // User's email address
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	RoleType  RoleType  `json:"role" db:"role" example:"student"`                         // Role (student, instructor or admin)
	Avatar    *string   `json:"avatar,omitempty" db:"avatar"`                             // Avatar image URL (nullable)
	Bio       *string   `json:"bio,omitempty" db:"bio"`                                   // Short biography (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated

	// EnrolledCourses is a view derived from the enrollments table; the
	// enrollments table is the single source of truth for enrollment state.
	EnrolledCourses []*EnrolledCourse `json:"enrolledCourses,omitempty"`
}

// EnrolledCourse is a compact course view attached to a user profile.
type EnrolledCourse struct {
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	Title        string    `json:"title" db:"title"`
	Image        string    `json:"image" db:"image"`
	Progress     int       `json:"progress" db:"progress"`
	Status       string    `json:"status" db:"status"`
	EnrolledAt   time.Time `json:"enrolledAt" db:"enrolled_at"`
}
