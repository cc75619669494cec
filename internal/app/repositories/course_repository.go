package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/db"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var courseSelectColumns = []string{
	"c.id", "c.title", "c.description", "c.instructor_id", "c.price",
	"c.original_price", "c.image", "c.category", "c.level", "c.duration",
	"c.students_count", "c.rating", "c.reviews_count", "c.tags",
	"c.is_popular", "c.is_bestseller", "c.created_at", "c.updated_at",
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.InstructorID,
		&course.Price,
		&course.OriginalPrice,
		&course.Image,
		&course.Category,
		&course.Level,
		&course.Duration,
		&course.StudentsCount,
		&course.Rating,
		&course.ReviewsCount,
		&course.Tags,
		&course.IsPopular,
		&course.IsBestseller,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// buildSearchQuery translates the optional course filters into a SELECT.
// Filters combine with AND; sentinel values ("", "All Categories",
// "All Levels", "all") apply no constraint. Results come newest first.
func buildSearchQuery(sb squirrel.StatementBuilderType, filter dto.CourseFilter) squirrel.SelectBuilder {
	query := sb.Select(courseSelectColumns...).From("courses c")

	conditions := squirrel.And{}

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"c.title": term},
			squirrel.ILike{"c.description": term},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(c.tags) AS tag WHERE tag ILIKE ?)", term),
		})
	}

	if filter.Category != "" && filter.Category != models.AllCategories {
		conditions = append(conditions, squirrel.Eq{"c.category": filter.Category})
	}

	if filter.Level != "" && filter.Level != models.AllLevels {
		conditions = append(conditions, squirrel.Eq{"c.level": filter.Level})
	}

	switch filter.PriceRange {
	case models.PriceFree:
		conditions = append(conditions, squirrel.Eq{"c.price": 0})
	case models.PriceUnder50:
		conditions = append(conditions, squirrel.Lt{"c.price": 50})
	case models.Price50To100:
		conditions = append(conditions, squirrel.And{
			squirrel.GtOrEq{"c.price": 50},
			squirrel.LtOrEq{"c.price": 100},
		})
	case models.PriceOver100:
		conditions = append(conditions, squirrel.Gt{"c.price": 100})
	}

	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	return query.OrderBy("c.created_at DESC")
}

// Search retrieves courses matching the given filters, newest first.
func (r *CourseRepository) Search(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	sqlQuery, args, err := buildSearchQuery(r.sb, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course with its ordered lessons and instructor summary.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.instructor_id, c.price,
		       c.original_price, c.image, c.category, c.level, c.duration,
		       c.students_count, c.rating, c.reviews_count, c.tags,
		       c.is_popular, c.is_bestseller, c.created_at, c.updated_at
		FROM courses c
		WHERE c.id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	lessons, err := r.getLessons(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Lessons = lessons

	instructor, err := r.getInstructor(ctx, course.InstructorID)
	if err == nil {
		course.Instructor = instructor
	}

	return course, nil
}

func (r *CourseRepository) getLessons(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	query := `
		SELECT id, course_id, position, title, duration, video_url, description
		FROM course_lessons
		WHERE course_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Position,
			&lesson.Title,
			&lesson.Duration,
			&lesson.VideoURL,
			&lesson.Description,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lessons, nil
}

func (r *CourseRepository) getInstructor(ctx context.Context, instructorID int64) (*models.User, error) {
	query := `SELECT id, name, email, role, avatar, bio FROM users WHERE id = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, instructorID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.RoleType,
		&user.Avatar,
		&user.Bio,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Create inserts a course together with its ordered lesson list in a single
// transaction.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO courses (title, description, instructor_id, price, original_price,
			                     image, category, level, duration, rating, reviews_count,
			                     tags, is_popular, is_bestseller)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, students_count, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			course.Title, course.Description, course.InstructorID, course.Price,
			course.OriginalPrice, course.Image, course.Category, course.Level,
			course.Duration, course.Rating, course.ReviewsCount, course.Tags,
			course.IsPopular, course.IsBestseller,
		).Scan(&course.ID, &course.StudentsCount, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating course: %w", err)
		}

		return insertLessons(ctx, tx, course.ID, course.Lessons)
	})
}

func insertLessons(ctx context.Context, tx pgx.Tx, courseID int64, lessons []*models.Lesson) error {
	for i, lesson := range lessons {
		lesson.CourseID = courseID
		lesson.Position = i + 1
		err := tx.QueryRow(ctx, `
			INSERT INTO course_lessons (course_id, position, title, duration, video_url, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, courseID, lesson.Position, lesson.Title, lesson.Duration, lesson.VideoURL, lesson.Description,
		).Scan(&lesson.ID)
		if err != nil {
			return fmt.Errorf("error creating lesson: %w", err)
		}
	}
	return nil
}

// Update rewrites a course's fields; when lessons are provided the lesson
// list is replaced. The denormalized students_count is never touched here.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, replaceLessons bool) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE courses
			SET title = $1, description = $2, price = $3, original_price = $4,
			    image = $5, category = $6, level = $7, duration = $8, tags = $9,
			    is_popular = $10, is_bestseller = $11, updated_at = NOW()
			WHERE id = $12
			RETURNING updated_at
		`

		err := tx.QueryRow(ctx, query,
			course.Title, course.Description, course.Price, course.OriginalPrice,
			course.Image, course.Category, course.Level, course.Duration,
			course.Tags, course.IsPopular, course.IsBestseller, course.ID,
		).Scan(&course.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCourseNotFound
			}
			return fmt.Errorf("error updating course: %w", err)
		}

		if !replaceLessons {
			return nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM course_lessons WHERE course_id = $1`, course.ID); err != nil {
			return fmt.Errorf("error clearing lessons: %w", err)
		}
		return insertLessons(ctx, tx, course.ID, course.Lessons)
	})
}

// Delete removes a course and its enrollments.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCourseNotFound
		}
		return nil
	})
}
