package models

import (
	"time"
)

// StudentDetails is the contact/motivation form snapshot captured when a
// student enrolls. It is stored with the enrollment and never updated from
// the user profile afterwards.
type StudentDetails struct {
	FullName   string `json:"fullName" db:"full_name" example:"John Doe"`
	Email      string `json:"email" db:"email" example:"john@example.com"`
	Phone      string `json:"phone" db:"phone"`
	Education  string `json:"education" db:"education"`
	Experience string `json:"experience" db:"experience"`
	Motivation string `json:"motivation" db:"motivation"`
	Goals      string `json:"goals" db:"goals"`
}

// CompletedLesson records a single lesson completion within an enrollment.
type CompletedLesson struct {
	LessonID    string    `json:"lessonId" db:"lesson_id"`
	CompletedAt time.Time `json:"completedAt" db:"completed_at"`
}

// Enrollment links a user to a course they registered for. The pair
// (UserID, CourseID) is unique: a user can hold at most one enrollment per
// course, enforced by the uq_enrollments_user_course constraint.
type Enrollment struct {
	ID                  int64            `json:"id" db:"id"`
	UserID              int64            `json:"userId" db:"user_id"`
	CourseID            int64            `json:"courseId" db:"course_id"`
	StudentDetails      StudentDetails   `json:"studentDetails"`
	Status              EnrollmentStatus `json:"status" db:"status" example:"active"`
	Progress            int              `json:"progress" db:"progress" example:"0"` // 0-100
	CompletedLessons    []CompletedLesson `json:"completedLessons"`
	CertificateIssued   bool             `json:"certificateIssued" db:"certificate_issued"`
	CertificateIssuedAt *time.Time       `json:"certificateIssuedAt,omitempty" db:"certificate_issued_at"`
	EnrolledAt          time.Time        `json:"enrollmentDate" db:"enrolled_at"`
	CreatedAt           time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course *CourseSummary `json:"course,omitempty"`
	User   *UserSummary   `json:"user,omitempty"`
}

// CourseSummary carries the course fields denormalized onto enrollment reads.
type CourseSummary struct {
	ID           int64   `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Description  string  `json:"description,omitempty" db:"description"`
	Image        string  `json:"image,omitempty" db:"image"`
	Price        float64 `json:"price" db:"price"`
	Category     string  `json:"category,omitempty" db:"category"`
	Level        string  `json:"level,omitempty" db:"level"`
	InstructorID int64   `json:"instructorId" db:"instructor_id"`
}

// UserSummary carries the user fields denormalized onto enrollment reads.
type UserSummary struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
