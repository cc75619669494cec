package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/app/repositories"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	SearchCourses(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseStore
	userRepo   userStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, userRepo userStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// validateCourseFields checks the invariants binding tags cannot express.
// Errors carry the offending field so the response can name it.
func validateCourseFields(title, description, category, level string, price float64) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title cannot be empty").WithField("title")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidationError("description cannot be empty").WithField("description")
	}
	if strings.TrimSpace(category) == "" {
		return apperrors.NewValidationError("category cannot be empty").WithField("category")
	}
	if !models.ValidCourseLevel(level) {
		return apperrors.NewValidationError("level must be one of Beginner, Intermediate, Advanced").WithField("level")
	}
	if price < 0 {
		return apperrors.NewValidationError("price cannot be negative").WithField("price")
	}
	return nil
}

// CreateCourse validates the instructor reference and persists the course
// with its ordered lesson list.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validateCourseFields(req.Title, req.Description, req.Category, req.Level, req.Price); err != nil {
		return nil, err
	}

	instructor, err := s.userRepo.FindByID(ctx, req.InstructorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewValidationError("instructor not found").WithField("instructorId")
		}
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}

	course := &models.Course{
		Title:         req.Title,
		Description:   req.Description,
		InstructorID:  instructor.ID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
		Level:         models.CourseLevel(req.Level),
		Duration:      req.Duration,
		Tags:          req.Tags,
		IsPopular:     req.IsPopular,
		IsBestseller:  req.IsBestseller,
		Lessons:       lessonsFromInput(req.Lessons),
	}
	if course.Image == "" {
		course.Image = "/online-learning-platform.png"
	}
	if course.Tags == nil {
		course.Tags = []string{}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	course.Instructor = instructor
	return course, nil
}

// GetCourseByID retrieves a course with lessons and instructor summary.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// SearchCourses runs the filtered catalog query. Sentinel filter values are
// handled by the store's query builder; unknown price buckets are rejected.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	if filter.PriceRange != "" && !models.ValidPriceRange(filter.PriceRange) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown price range %q", filter.PriceRange)).
			WithField("priceRange").
			WithDetails(map[string]interface{}{
				"allowed": []string{models.AllPrices, models.PriceFree, models.PriceUnder50, models.Price50To100, models.PriceOver100},
			})
	}

	courses, err := s.courseRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse rewrites the course's fields; a lesson list in the request
// replaces the existing lessons.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validateCourseFields(req.Title, req.Description, req.Category, req.Level, req.Price); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Price = req.Price
	course.OriginalPrice = req.OriginalPrice
	course.Category = req.Category
	course.Level = models.CourseLevel(req.Level)
	course.Duration = req.Duration
	course.IsPopular = req.IsPopular
	course.IsBestseller = req.IsBestseller
	if req.Image != "" {
		course.Image = req.Image
	}
	if req.Tags != nil {
		course.Tags = req.Tags
	}

	replaceLessons := req.Lessons != nil
	if replaceLessons {
		course.Lessons = lessonsFromInput(req.Lessons)
	}

	if err := s.courseRepo.Update(ctx, course, replaceLessons); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteCourse removes a course and its enrollments.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}

func lessonsFromInput(inputs []dto.LessonInput) []*models.Lesson {
	lessons := make([]*models.Lesson, 0, len(inputs))
	for i, in := range inputs {
		lessons = append(lessons, &models.Lesson{
			Position:    i + 1,
			Title:       in.Title,
			Duration:    in.Duration,
			VideoURL:    in.VideoURL,
			Description: in.Description,
		})
	}
	return lessons
}
