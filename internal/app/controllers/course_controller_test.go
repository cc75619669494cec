package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
	"github.com/coursehub/coursehub/internal/pkg/validation"
)

type stubCourseService struct {
	searchFn  func(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Course, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubCourseService) CreateCourse(context.Context, *dto.CreateCourseRequest) (*models.Course, error) {
	return nil, nil
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCourseService) SearchCourses(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	return s.searchFn(ctx, filter)
}

func (s *stubCourseService) UpdateCourse(context.Context, int64, *dto.UpdateCourseRequest) (*models.Course, error) {
	return nil, nil
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newCourseRouter(t *testing.T, svc *stubCourseService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidations())

	controller := NewCourseController(svc)
	router := gin.New()
	router.GET("/courses", controller.SearchCourses)
	router.GET("/courses/:id", controller.GetCourseByID)
	router.DELETE("/courses/:id", controller.DeleteCourse)
	return router
}

func TestSearchCoursesBindsFilters(t *testing.T) {
	var got dto.CourseFilter
	svc := &stubCourseService{
		searchFn: func(_ context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
			got = filter
			return []*models.Course{{ID: 1, Title: "Go Basics"}}, nil
		},
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	target := "/courses?search=react&category=Web+Development&level=Beginner&priceRange=under-50"
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "react", got.Search)
	assert.Equal(t, "Web Development", got.Category)
	assert.Equal(t, "Beginner", got.Level)
	assert.Equal(t, "under-50", got.PriceRange)
}

func TestSearchCoursesAcceptsSentinelLevel(t *testing.T) {
	svc := &stubCourseService{
		searchFn: func(context.Context, dto.CourseFilter) ([]*models.Course, error) {
			return nil, nil
		},
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?level=All+Levels", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchCoursesRejectsUnknownLevel(t *testing.T) {
	svc := &stubCourseService{
		searchFn: func(context.Context, dto.CourseFilter) ([]*models.Course, error) {
			t.Fatal("service must not be called for invalid filters")
			return nil, nil
		},
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?level=Expert", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCoursesRejectsUnknownPriceRange(t *testing.T) {
	svc := &stubCourseService{
		searchFn: func(context.Context, dto.CourseFilter) ([]*models.Course, error) {
			t.Fatal("service must not be called for invalid filters")
			return nil, nil
		},
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses?priceRange=cheap", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseNotFoundAnswers404(t *testing.T) {
	svc := &stubCourseService{
		getByIDFn: func(context.Context, int64) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCourseReturnsSuccessMessage(t *testing.T) {
	svc := &stubCourseService{
		deleteFn: func(context.Context, int64) error { return nil },
	}
	router := newCourseRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Course deleted successfully")
}
