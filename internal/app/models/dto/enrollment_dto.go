package dto

// StudentDetailsInput is the enrollment form snapshot submitted by the client.
type StudentDetailsInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Education  string `json:"education" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Motivation string `json:"motivation" binding:"required"`
	Goals      string `json:"goals" binding:"required"`
}

// CreateEnrollmentRequest represents an enrollment creation request
type CreateEnrollmentRequest struct {
	UserID         int64               `json:"userId" binding:"required,gt=0"`
	CourseID       int64               `json:"courseId" binding:"required,gt=0"`
	StudentDetails StudentDetailsInput `json:"studentDetails" binding:"required"`
}

// UpdateProgressRequest updates an enrollment's progress. Progress is a
// pointer so an explicit 0 is distinguishable from an absent field.
type UpdateProgressRequest struct {
	Progress *int    `json:"progress" binding:"required"`
	LessonID *string `json:"lessonId"`
}
