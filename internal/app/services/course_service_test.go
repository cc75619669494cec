package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

func newCourseFixture() (CourseService, *fakeUserStore, *fakeCourseStore) {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, users)
	return svc, users, courses
}

func createCourseRequest(instructorID int64) *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:        "Complete React Development Course",
		Description:  "Master React from basics to advanced concepts.",
		InstructorID: instructorID,
		Price:        89.99,
		Category:     "Web Development",
		Level:        string(models.LevelIntermediate),
		Duration:     "12 hours",
		Tags:         []string{"React", "JavaScript"},
		Lessons: []dto.LessonInput{
			{Title: "Introduction to React", Duration: "15 min"},
			{Title: "Components and JSX", Duration: "20 min"},
		},
	}
}

func TestCreateCourse(t *testing.T) {
	svc, users, _ := newCourseFixture()
	instructor := users.add(&models.User{Name: "Sarah Johnson", Email: "sarah@coursehub.dev", RoleType: models.RoleInstructor})

	course, err := svc.CreateCourse(context.Background(), createCourseRequest(instructor.ID))
	require.NoError(t, err)

	assert.NotZero(t, course.ID)
	assert.Equal(t, instructor.ID, course.InstructorID)
	assert.Equal(t, 0, course.StudentsCount)
	require.Len(t, course.Lessons, 2)
	assert.Equal(t, 1, course.Lessons[0].Position)
	assert.Equal(t, 2, course.Lessons[1].Position)
	require.NotNil(t, course.Instructor)
	assert.Equal(t, "Sarah Johnson", course.Instructor.Name)
}

func TestCreateCourseAppliesDefaults(t *testing.T) {
	svc, users, _ := newCourseFixture()
	instructor := users.add(&models.User{Name: "Sarah Johnson", Email: "sarah@coursehub.dev"})

	req := createCourseRequest(instructor.ID)
	req.Image = ""
	req.Tags = nil

	course, err := svc.CreateCourse(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/online-learning-platform.png", course.Image)
	assert.NotNil(t, course.Tags)
	assert.Empty(t, course.Tags)
}

func TestCreateCourseUnknownInstructor(t *testing.T) {
	svc, _, _ := newCourseFixture()

	_, err := svc.CreateCourse(context.Background(), createCourseRequest(99))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "instructorId", customErr.Field)
}

func TestCreateCourseInvalidFields(t *testing.T) {
	svc, users, _ := newCourseFixture()
	instructor := users.add(&models.User{Name: "Sarah Johnson", Email: "sarah@coursehub.dev"})

	tests := []struct {
		name   string
		field  string
		mutate func(*dto.CreateCourseRequest)
	}{
		{"empty title", "title", func(r *dto.CreateCourseRequest) { r.Title = "  " }},
		{"empty description", "description", func(r *dto.CreateCourseRequest) { r.Description = "" }},
		{"empty category", "category", func(r *dto.CreateCourseRequest) { r.Category = "" }},
		{"unknown level", "level", func(r *dto.CreateCourseRequest) { r.Level = "Expert" }},
		{"negative price", "price", func(r *dto.CreateCourseRequest) { r.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createCourseRequest(instructor.ID)
			tt.mutate(req)
			_, err := svc.CreateCourse(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var customErr *apperrors.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tt.field, customErr.Field)
		})
	}
}

func TestSearchCoursesRejectsUnknownPriceRange(t *testing.T) {
	svc, _, _ := newCourseFixture()

	_, err := svc.SearchCourses(context.Background(), dto.CourseFilter{PriceRange: "cheap"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "priceRange", customErr.Field)
	assert.Contains(t, customErr.Details, "allowed")
}

func TestSearchCoursesAcceptsKnownBucketsAndSentinels(t *testing.T) {
	svc, _, courses := newCourseFixture()
	courses.add(&models.Course{Title: "Go Basics"})

	for _, bucket := range []string{"", models.AllPrices, models.PriceFree, models.PriceUnder50, models.Price50To100, models.PriceOver100} {
		_, err := svc.SearchCourses(context.Background(), dto.CourseFilter{PriceRange: bucket})
		assert.NoError(t, err, "bucket %q", bucket)
	}
}

func TestUpdateCourseKeepsLessonsWhenAbsent(t *testing.T) {
	svc, users, courses := newCourseFixture()
	instructor := users.add(&models.User{Name: "Sarah Johnson", Email: "sarah@coursehub.dev"})

	created, err := svc.CreateCourse(context.Background(), createCourseRequest(instructor.ID))
	require.NoError(t, err)

	update := &dto.UpdateCourseRequest{
		Title:       "Updated Title",
		Description: created.Description,
		Price:       59.99,
		Category:    created.Category,
		Level:       string(created.Level),
	}

	updated, err := svc.UpdateCourse(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, 59.99, updated.Price)
	assert.Len(t, updated.Lessons, 2, "absent lesson list must not clear lessons")

	stored := courses.courses[created.ID]
	assert.Equal(t, "Updated Title", stored.Title)
}

func TestUpdateCourseReplacesLessonsWhenProvided(t *testing.T) {
	svc, users, _ := newCourseFixture()
	instructor := users.add(&models.User{Name: "Sarah Johnson", Email: "sarah@coursehub.dev"})

	created, err := svc.CreateCourse(context.Background(), createCourseRequest(instructor.ID))
	require.NoError(t, err)

	update := &dto.UpdateCourseRequest{
		Title:       created.Title,
		Description: created.Description,
		Price:       created.Price,
		Category:    created.Category,
		Level:       string(created.Level),
		Lessons: []dto.LessonInput{
			{Title: "New Single Lesson", Duration: "30 min"},
		},
	}

	updated, err := svc.UpdateCourse(context.Background(), created.ID, update)
	require.NoError(t, err)
	require.Len(t, updated.Lessons, 1)
	assert.Equal(t, "New Single Lesson", updated.Lessons[0].Title)
	assert.Equal(t, 1, updated.Lessons[0].Position)
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc, _, _ := newCourseFixture()

	update := &dto.UpdateCourseRequest{
		Title:       "Title",
		Description: "Description",
		Category:    "Category",
		Level:       string(models.LevelBeginner),
	}
	_, err := svc.UpdateCourse(context.Background(), 99, update)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc, _, _ := newCourseFixture()
	err := svc.DeleteCourse(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourseByIDNotFound(t *testing.T) {
	svc, _, _ := newCourseFixture()
	_, err := svc.GetCourseByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
