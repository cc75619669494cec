package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/app/repositories"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

// UserService defines the interface for user operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	EnrollInCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo          userStore
	enrollmentService EnrollmentService
}

// NewUserService creates a new UserService
func NewUserService(userRepo userStore, enrollmentService EnrollmentService) UserService {
	return &userServiceImpl{
		userRepo:          userRepo,
		enrollmentService: enrollmentService,
	}
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	return users, nil
}

// GetUserByID retrieves a user with their enrolled-course view. The view is
// derived from the enrollments table, which is the single source of truth
// for enrollment state.
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	enrolled, err := s.userRepo.GetEnrolledCourses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	user.EnrolledCourses = enrolled

	return user, nil
}

// UpdateUser updates a user's profile fields.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	user.Name = req.Name
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// EnrollInCourse is the secondary enrollment path mounted under /users. It
// delegates to the enrollment service so both paths share one source of
// truth, snapshotting the student details from the user's profile.
func (s *userServiceImpl) EnrollInCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	req := &dto.CreateEnrollmentRequest{
		UserID:   userID,
		CourseID: courseID,
		StudentDetails: dto.StudentDetailsInput{
			FullName: user.Name,
			Email:    user.Email,
		},
	}

	return s.enrollmentService.Enroll(ctx, req)
}
