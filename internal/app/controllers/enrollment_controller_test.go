package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

// stubEnrollmentService lets each test pin the behavior of the endpoint
// under test.
type stubEnrollmentService struct {
	enrollFn         func(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.Enrollment, error)
	updateProgressFn func(ctx context.Context, id int64, progress int, lessonID *string) (*models.Enrollment, error)
	unenrollFn       func(ctx context.Context, id int64) error
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	return s.enrollFn(ctx, req)
}

func (s *stubEnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubEnrollmentService) ListByUser(context.Context, int64) ([]*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) ListByCourse(context.Context, int64) ([]*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) UpdateProgress(ctx context.Context, id int64, progress int, lessonID *string) (*models.Enrollment, error) {
	return s.updateProgressFn(ctx, id, progress, lessonID)
}

func (s *stubEnrollmentService) Unenroll(ctx context.Context, id int64) error {
	return s.unenrollFn(ctx, id)
}

func newEnrollmentRouter(svc *stubEnrollmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewEnrollmentController(svc)

	router := gin.New()
	router.POST("/enrollments", controller.CreateEnrollment)
	router.GET("/enrollments/:id", controller.GetEnrollmentByID)
	router.PUT("/enrollments/:id/progress", controller.UpdateProgress)
	router.DELETE("/enrollments/:id", controller.DeleteEnrollment)
	return router
}

func validEnrollmentBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"userId":   1,
		"courseId": 2,
		"studentDetails": map[string]string{
			"fullName":   "John Doe",
			"email":      "john@example.com",
			"phone":      "+1 555 0100",
			"education":  "BSc",
			"experience": "2 years",
			"motivation": "Career change",
			"goals":      "Backend development",
		},
	})
	return body
}

func decodeErrorResponse(t *testing.T, body *bytes.Buffer) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestCreateEnrollmentReturns201(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(_ context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
			return &models.Enrollment{ID: 7, UserID: req.UserID, CourseID: req.CourseID, Status: models.EnrollmentActive}, nil
		},
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(validEnrollmentBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestCreateEnrollmentDuplicateAnswers400WithFixedMessage(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(context.Context, *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
			return nil, apperrors.ErrAlreadyEnrolled
		},
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(validEnrollmentBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w.Body)
	assert.Equal(t, dto.ErrorCodeAlreadyEnrolled, resp.Error.Code)
	assert.Equal(t, "User is already enrolled in this course", resp.Error.Message)
}

func TestCreateEnrollmentRejectsIncompleteStudentDetails(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(context.Context, *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	}
	router := newEnrollmentRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"userId":   1,
		"courseId": 2,
		"studentDetails": map[string]string{
			"fullName": "John Doe",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w.Body)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestGetEnrollmentNotFoundAnswers404(t *testing.T) {
	svc := &stubEnrollmentService{
		getByIDFn: func(context.Context, int64) (*models.Enrollment, error) {
			return nil, apperrors.ErrEnrollmentNotFound
		},
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/enrollments/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w.Body)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestGetEnrollmentRejectsInvalidID(t *testing.T) {
	svc := &stubEnrollmentService{
		getByIDFn: func(context.Context, int64) (*models.Enrollment, error) {
			t.Fatal("service must not be called for invalid IDs")
			return nil, nil
		},
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/enrollments/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProgressPassesValuesThrough(t *testing.T) {
	var gotProgress int
	var gotLesson *string
	svc := &stubEnrollmentService{
		updateProgressFn: func(_ context.Context, id int64, progress int, lessonID *string) (*models.Enrollment, error) {
			gotProgress = progress
			gotLesson = lessonID
			return &models.Enrollment{ID: id, Progress: progress}, nil
		},
	}
	router := newEnrollmentRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"progress": 55, "lessonId": "lesson-3"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/enrollments/7/progress", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 55, gotProgress)
	require.NotNil(t, gotLesson)
	assert.Equal(t, "lesson-3", *gotLesson)
}

func TestUpdateProgressRequiresProgressField(t *testing.T) {
	svc := &stubEnrollmentService{
		updateProgressFn: func(context.Context, int64, int, *string) (*models.Enrollment, error) {
			t.Fatal("service must not be called without a progress value")
			return nil, nil
		},
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/enrollments/7/progress", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEnrollmentReturnsSuccessMessage(t *testing.T) {
	svc := &stubEnrollmentService{
		unenrollFn: func(context.Context, int64) error { return nil },
	}
	router := newEnrollmentRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/enrollments/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enrollment deleted successfully")
}
