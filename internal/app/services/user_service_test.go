package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/pkg/apperrors"
)

func newUserFixture() (UserService, *fakeUserStore, *fakeCourseStore, *fakeEnrollmentStore) {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	enrollments := newFakeEnrollmentStore(courses)
	enrollmentSvc := NewEnrollmentService(enrollments, courses, users, zerolog.Nop())
	svc := NewUserService(users, enrollmentSvc)
	return svc, users, courses, enrollments
}

func TestGetUserByIDAttachesEnrolledCourses(t *testing.T) {
	svc, users, _, _ := newUserFixture()

	user := users.add(&models.User{Name: "John Doe", Email: "john@example.com"})
	users.enrolled[user.ID] = []*models.EnrolledCourse{
		{EnrollmentID: 1, CourseID: 7, Title: "Go Basics", Progress: 40, Status: "active"},
	}

	got, err := svc.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, got.EnrolledCourses, 1)
	assert.Equal(t, int64(7), got.EnrolledCourses[0].CourseID)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	user := users.add(&models.User{Name: "John Doe", Email: "john@example.com"})

	avatar := "/avatars/john.png"
	updated, err := svc.UpdateUser(context.Background(), user.ID, &dto.UpdateUserRequest{
		Name:   "Johnny Doe",
		Avatar: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", updated.Name)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, avatar, *updated.Avatar)
}

func TestEnrollInCourseSnapshotsProfileDetails(t *testing.T) {
	svc, users, courses, _ := newUserFixture()

	user := users.add(&models.User{Name: "John Doe", Email: "john@example.com"})
	course := courses.add(&models.Course{Title: "Go Basics"})

	enrollment, err := svc.EnrollInCourse(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", enrollment.StudentDetails.FullName)
	assert.Equal(t, "john@example.com", enrollment.StudentDetails.Email)
	assert.Equal(t, 1, course.StudentsCount)
}

func TestEnrollInCourseSharesUniquenessWithEnrollments(t *testing.T) {
	svc, users, courses, _ := newUserFixture()

	user := users.add(&models.User{Name: "John Doe", Email: "john@example.com"})
	course := courses.add(&models.Course{Title: "Go Basics"})

	_, err := svc.EnrollInCourse(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	// The user-scoped path hits the same uniqueness rule as POST /enrollments.
	_, err = svc.EnrollInCourse(context.Background(), user.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	assert.Equal(t, 1, course.StudentsCount)
}

func TestEnrollInCourseUserNotFound(t *testing.T) {
	svc, _, courses, _ := newUserFixture()
	course := courses.add(&models.Course{Title: "Go Basics"})

	_, err := svc.EnrollInCourse(context.Background(), 99, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
