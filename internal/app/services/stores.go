package services

import (
	"context"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
)

// Narrow store interfaces consumed by the services. The concrete
// repositories in internal/app/repositories satisfy them; tests substitute
// in-memory fakes.

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.EnrolledCourse, error)
}

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Search(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course, replaceLessons bool) error
	Delete(ctx context.Context, id int64) error
}

type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, enrollment *models.Enrollment, lessonID *string) error
	Delete(ctx context.Context, id int64) error
}
