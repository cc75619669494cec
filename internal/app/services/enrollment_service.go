package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/app/repositories"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, id int64, progress int, lessonID *string) (*models.Enrollment, error)
	Unenroll(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo enrollmentStore
	courseRepo     courseStore
	userRepo       userStore
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo enrollmentStore,
	courseRepo courseStore,
	userRepo userStore,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Enroll registers a user for a course. The (user, course) pair may hold at
// most one enrollment: a pre-check catches the common duplicate case, and the
// store's unique constraint backstops concurrent creates that both pass it.
// The course's students_count is incremented by the store in the same
// transaction as the insert.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	existing, err := s.enrollmentRepo.FindByUserAndCourse(ctx, req.UserID, req.CourseID)
	if err != nil && !errors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error checking course: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error checking user: %w", err)
	}

	enrollment := &models.Enrollment{
		UserID:   req.UserID,
		CourseID: req.CourseID,
		StudentDetails: models.StudentDetails{
			FullName:   req.StudentDetails.FullName,
			Email:      req.StudentDetails.Email,
			Phone:      req.StudentDetails.Phone,
			Education:  req.StudentDetails.Education,
			Experience: req.StudentDetails.Experience,
			Motivation: req.StudentDetails.Motivation,
			Goals:      req.StudentDetails.Goals,
		},
		Status:           models.EnrollmentActive,
		Progress:         0,
		CompletedLessons: []models.CompletedLesson{},
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// constraint serializes them and the loser lands here.
		if errors.Is(err, repositories.ErrDuplicateEnrollment) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	s.logger.Info().
		Int64("enrollmentId", enrollment.ID).
		Int64("userId", req.UserID).
		Int64("courseId", req.CourseID).
		Msg("Enrollment created")

	enrollment.Course = &models.CourseSummary{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		Image:        course.Image,
		Price:        course.Price,
		Category:     course.Category,
		Level:        string(course.Level),
		InstructorID: course.InstructorID,
	}
	enrollment.User = &models.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}

	return enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// ListByUser retrieves a user's enrollments, newest first.
func (s *enrollmentServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	return enrollments, nil
}

// ListByCourse retrieves a course's enrollments, newest first.
func (s *enrollmentServiceImpl) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	return enrollments, nil
}

// UpdateProgress sets the enrollment's progress, clamped to [0, 100], and
// records the completed lesson when one is given. Reaching 100 marks the
// enrollment completed and issues the certificate. A completed enrollment
// keeps its status and certificate even if progress is later lowered.
func (s *enrollmentServiceImpl) UpdateProgress(ctx context.Context, id int64, progress int, lessonID *string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	enrollment.Progress = clampProgress(progress)

	if enrollment.Progress >= 100 && enrollment.Status != models.EnrollmentCompleted {
		now := time.Now()
		enrollment.Status = models.EnrollmentCompleted
		enrollment.CertificateIssued = true
		enrollment.CertificateIssuedAt = &now

		s.logger.Info().
			Int64("enrollmentId", enrollment.ID).
			Msg("Enrollment completed, certificate issued")
	}

	if err := s.enrollmentRepo.UpdateProgress(ctx, enrollment, lessonID); err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error updating progress: %w", err)
	}

	// Re-read so the completed-lessons list reflects this update.
	return s.GetEnrollmentByID(ctx, id)
}

// Unenroll deletes the enrollment; the store decrements the course's
// students_count in the same transaction as the delete.
func (s *enrollmentServiceImpl) Unenroll(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	s.logger.Info().Int64("enrollmentId", id).Msg("Enrollment deleted")
	return nil
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
