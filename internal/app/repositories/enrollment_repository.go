package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/db"
	"github.com/coursehub/coursehub/internal/pkg/dberrors"
)

// uniqueEnrollmentConstraint is the compound unique index on (user_id,
// course_id). A violation means the user is already enrolled in the course.
const uniqueEnrollmentConstraint = "uq_enrollments_user_course"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `
	e.id, e.user_id, e.course_id,
	e.full_name, e.email, e.phone, e.education, e.experience, e.motivation, e.goals,
	e.status, e.progress, e.certificate_issued, e.certificate_issued_at,
	e.enrolled_at, e.created_at, e.updated_at`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CourseID,
		&e.StudentDetails.FullName,
		&e.StudentDetails.Email,
		&e.StudentDetails.Phone,
		&e.StudentDetails.Education,
		&e.StudentDetails.Experience,
		&e.StudentDetails.Motivation,
		&e.StudentDetails.Goals,
		&e.Status,
		&e.Progress,
		&e.CertificateIssued,
		&e.CertificateIssuedAt,
		&e.EnrolledAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts the enrollment and increments the course's students_count
// in the same transaction, so the denormalized counter stays consistent with
// the enrollment rows. A unique-constraint violation on the (user, course)
// pair is reported as ErrDuplicateEnrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO enrollments (user_id, course_id, full_name, email, phone,
			                         education, experience, motivation, goals, status, progress)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, enrolled_at, created_at, updated_at
		`

		d := enrollment.StudentDetails
		err := tx.QueryRow(ctx, query,
			enrollment.UserID, enrollment.CourseID,
			d.FullName, d.Email, d.Phone, d.Education, d.Experience, d.Motivation, d.Goals,
			enrollment.Status, enrollment.Progress,
		).Scan(&enrollment.ID, &enrollment.EnrolledAt, &enrollment.CreatedAt, &enrollment.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE courses SET students_count = students_count + 1, updated_at = NOW() WHERE id = $1`,
			enrollment.CourseID)
		if err != nil {
			return fmt.Errorf("error incrementing students count: %w", err)
		}

		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, uniqueEnrollmentConstraint) {
			return ErrDuplicateEnrollment
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment with its completed lessons and the joined
// course/user summaries.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `SELECT` + enrollmentColumns + ` FROM enrollments e WHERE e.id = $1`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	if err := r.attachCompletedLessons(ctx, enrollment); err != nil {
		return nil, err
	}
	if err := r.attachSummaries(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// FindByUserAndCourse looks up an enrollment for the (user, course) pair.
func (r *EnrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	query := `SELECT` + enrollmentColumns + ` FROM enrollments e WHERE e.user_id = $1 AND e.course_id = $2`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, userID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// ListByUser retrieves a user's enrollments with course summaries, newest
// enrollment first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT` + enrollmentColumns + `,
		       c.id, c.title, c.description, c.image, c.price, c.category, c.level, c.instructor_id
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments by user: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var c models.CourseSummary
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CourseID,
			&e.StudentDetails.FullName, &e.StudentDetails.Email, &e.StudentDetails.Phone,
			&e.StudentDetails.Education, &e.StudentDetails.Experience,
			&e.StudentDetails.Motivation, &e.StudentDetails.Goals,
			&e.Status, &e.Progress, &e.CertificateIssued, &e.CertificateIssuedAt,
			&e.EnrolledAt, &e.CreatedAt, &e.UpdatedAt,
			&c.ID, &c.Title, &c.Description, &c.Image, &c.Price, &c.Category, &c.Level, &c.InstructorID,
		); err != nil {
			return nil, err
		}
		e.Course = &c
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListByCourse retrieves a course's enrollments with user summaries, newest
// enrollment first.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT` + enrollmentColumns + `,
		       u.id, u.name, u.email
		FROM enrollments e
		JOIN users u ON e.user_id = u.id
		WHERE e.course_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments by course: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var u models.UserSummary
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CourseID,
			&e.StudentDetails.FullName, &e.StudentDetails.Email, &e.StudentDetails.Phone,
			&e.StudentDetails.Education, &e.StudentDetails.Experience,
			&e.StudentDetails.Motivation, &e.StudentDetails.Goals,
			&e.Status, &e.Progress, &e.CertificateIssued, &e.CertificateIssuedAt,
			&e.EnrolledAt, &e.CreatedAt, &e.UpdatedAt,
			&u.ID, &u.Name, &u.Email,
		); err != nil {
			return nil, err
		}
		e.User = &u
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// UpdateProgress persists the enrollment's progress state and, when a lesson
// was completed, records it. Lesson completions are deduplicated by the
// unique (enrollment_id, lesson_id) constraint.
func (r *EnrollmentRepository) UpdateProgress(ctx context.Context, enrollment *models.Enrollment, lessonID *string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE enrollments
			SET progress = $1, status = $2, certificate_issued = $3,
			    certificate_issued_at = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING updated_at
		`

		err := tx.QueryRow(ctx, query,
			enrollment.Progress, enrollment.Status, enrollment.CertificateIssued,
			enrollment.CertificateIssuedAt, enrollment.ID,
		).Scan(&enrollment.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrEnrollmentNotFound
			}
			return fmt.Errorf("error updating enrollment progress: %w", err)
		}

		if lessonID != nil && *lessonID != "" {
			_, err := tx.Exec(ctx, `
				INSERT INTO enrollment_lessons (enrollment_id, lesson_id)
				VALUES ($1, $2)
				ON CONFLICT ON CONSTRAINT uq_enrollment_lessons DO NOTHING
			`, enrollment.ID, *lessonID)
			if err != nil {
				return fmt.Errorf("error recording lesson completion: %w", err)
			}
		}

		return nil
	})
}

// Delete removes the enrollment and decrements the course's students_count
// in the same transaction. The counter is floored at zero.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var courseID int64
		err := tx.QueryRow(ctx, `SELECT course_id FROM enrollments WHERE id = $1`, id).Scan(&courseID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrEnrollmentNotFound
			}
			return fmt.Errorf("error retrieving enrollment for delete: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE courses SET students_count = GREATEST(students_count - 1, 0), updated_at = NOW() WHERE id = $1`,
			courseID)
		if err != nil {
			return fmt.Errorf("error decrementing students count: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		return nil
	})
}

func (r *EnrollmentRepository) attachCompletedLessons(ctx context.Context, enrollment *models.Enrollment) error {
	rows, err := r.db.Query(ctx, `
		SELECT lesson_id, completed_at
		FROM enrollment_lessons
		WHERE enrollment_id = $1
		ORDER BY completed_at
	`, enrollment.ID)
	if err != nil {
		return fmt.Errorf("error retrieving completed lessons: %w", err)
	}
	defer rows.Close()

	completed := []models.CompletedLesson{}
	for rows.Next() {
		var cl models.CompletedLesson
		if err := rows.Scan(&cl.LessonID, &cl.CompletedAt); err != nil {
			return err
		}
		completed = append(completed, cl)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	enrollment.CompletedLessons = completed
	return nil
}

// attachSummaries loads the denormalized course and user views. A missing
// referent leaves the summary nil; any other failure is returned.
func (r *EnrollmentRepository) attachSummaries(ctx context.Context, enrollment *models.Enrollment) error {
	var c models.CourseSummary
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, image, price, category, level, instructor_id
		FROM courses WHERE id = $1
	`, enrollment.CourseID).Scan(
		&c.ID, &c.Title, &c.Description, &c.Image, &c.Price, &c.Category, &c.Level, &c.InstructorID,
	)
	if err := ignoreNoRows(err); err != nil {
		return fmt.Errorf("error retrieving course summary: %w", err)
	}
	if err == nil {
		enrollment.Course = &c
	}

	var u models.UserSummary
	err = r.db.QueryRow(ctx, `SELECT id, name, email FROM users WHERE id = $1`, enrollment.UserID).
		Scan(&u.ID, &u.Name, &u.Email)
	if err := ignoreNoRows(err); err != nil {
		return fmt.Errorf("error retrieving user summary: %w", err)
	}
	if err == nil {
		enrollment.User = &u
	}

	return nil
}
