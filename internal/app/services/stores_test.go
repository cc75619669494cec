package services

import (
	"context"
	"time"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/app/repositories"
)

// In-memory fakes for the store interfaces. They mirror the contracts the
// real repositories honor, including the unique (user, course) enrollment
// constraint and the students_count maintenance done inside the store.

type fakeUserStore struct {
	users    map[int64]*models.User
	enrolled map[int64][]*models.EnrolledCourse
	nextID   int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int64]*models.User),
		enrolled: make(map[int64][]*models.EnrolledCourse),
		nextID:   1,
	}
}

func (s *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	s.add(user)
	return nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) GetEnrolledCourses(_ context.Context, userID int64) ([]*models.EnrolledCourse, error) {
	return s.enrolled[userID], nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		courses: make(map[int64]*models.Course),
		nextID:  1,
	}
}

func (s *fakeCourseStore) add(course *models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = s.nextID
		s.nextID++
	}
	s.courses[course.ID] = course
	return course
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	s.add(course)
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, repositories.ErrCourseNotFound
	}
	return course, nil
}

func (s *fakeCourseStore) Search(_ context.Context, _ dto.CourseFilter) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course, _ bool) error {
	if _, ok := s.courses[course.ID]; !ok {
		return repositories.ErrCourseNotFound
	}
	s.courses[course.ID] = course
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return repositories.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

// fakeEnrollmentStore keeps the counter semantics of the real store: creating
// an enrollment increments the course's students_count and deleting one
// decrements it, never below zero.
type fakeEnrollmentStore struct {
	enrollments map[int64]*models.Enrollment
	courses     *fakeCourseStore
	nextID      int64

	// failNextCreate simulates losing the unique-constraint race after the
	// service's pre-check already passed.
	failNextCreate bool
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		enrollments: make(map[int64]*models.Enrollment),
		courses:     courses,
		nextID:      1,
	}
}

func (s *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	if s.failNextCreate {
		s.failNextCreate = false
		return repositories.ErrDuplicateEnrollment
	}
	for _, existing := range s.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return repositories.ErrDuplicateEnrollment
		}
	}

	enrollment.ID = s.nextID
	s.nextID++
	enrollment.EnrolledAt = time.Now()
	stored := *enrollment
	s.enrollments[enrollment.ID] = &stored

	if course, ok := s.courses.courses[enrollment.CourseID]; ok {
		course.StudentsCount++
	}
	return nil
}

func (s *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, repositories.ErrEnrollmentNotFound
	}
	copied := *enrollment
	copied.CompletedLessons = append([]models.CompletedLesson(nil), enrollment.CompletedLessons...)
	return &copied, nil
}

func (s *fakeEnrollmentStore) FindByUserAndCourse(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	for _, enrollment := range s.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			copied := *enrollment
			return &copied, nil
		}
	}
	return nil, repositories.ErrEnrollmentNotFound
}

func (s *fakeEnrollmentStore) ListByUser(_ context.Context, userID int64) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, enrollment := range s.enrollments {
		if enrollment.UserID == userID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (s *fakeEnrollmentStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, enrollment := range s.enrollments {
		if enrollment.CourseID == courseID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (s *fakeEnrollmentStore) UpdateProgress(_ context.Context, enrollment *models.Enrollment, lessonID *string) error {
	stored, ok := s.enrollments[enrollment.ID]
	if !ok {
		return repositories.ErrEnrollmentNotFound
	}

	stored.Progress = enrollment.Progress
	stored.Status = enrollment.Status
	stored.CertificateIssued = enrollment.CertificateIssued
	stored.CertificateIssuedAt = enrollment.CertificateIssuedAt

	if lessonID != nil {
		for _, lesson := range stored.CompletedLessons {
			if lesson.LessonID == *lessonID {
				return nil
			}
		}
		stored.CompletedLessons = append(stored.CompletedLessons, models.CompletedLesson{
			LessonID:    *lessonID,
			CompletedAt: time.Now(),
		})
	}
	return nil
}

func (s *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	enrollment, ok := s.enrollments[id]
	if !ok {
		return repositories.ErrEnrollmentNotFound
	}
	delete(s.enrollments, id)

	if course, ok := s.courses.courses[enrollment.CourseID]; ok && course.StudentsCount > 0 {
		course.StudentsCount--
	}
	return nil
}
