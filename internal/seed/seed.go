package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/coursehub/coursehub/internal/app/models"
	appRepos "github.com/coursehub/coursehub/internal/app/repositories"
	"github.com/coursehub/coursehub/internal/pkg/auth"
)

// CreateDefaultData creates default users and sample courses if they don't
// exist. Seeding is idempotent: users are matched by email and courses are
// only created on an empty catalog.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Users/Courses)...")
	var finalErr error

	instructorID, err := ensureUser(ctx, userRepo, lgr, "Sarah Johnson", "sarah@coursehub.dev", appModels.RoleInstructor)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if _, err := ensureUser(ctx, userRepo, lgr, "John Doe", "john@coursehub.dev", appModels.RoleStudent); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if _, err := ensureUser(ctx, userRepo, lgr, "Admin User", "admin@coursehub.dev", appModels.RoleAdmin); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if instructorID > 0 {
		if err := ensureCourses(ctx, courseRepo, lgr, instructorID); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func ensureUser(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger, name, email string, role appModels.RoleType) (int64, error) {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, appRepos.ErrUserNotFound) {
		lgr.Error().Err(err).Str("email", email).Msg("Error checking default user")
		return 0, err
	}

	// Default credentials for local development only.
	hashed, err := auth.HashPassword("password123")
	if err != nil {
		return 0, err
	}

	user := &appModels.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleType: role,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, appRepos.ErrEmailTaken) {
			return 0, nil
		}
		lgr.Error().Err(err).Str("email", email).Msg("Error creating default user")
		return 0, err
	}

	lgr.Info().Str("email", email).Str("role", string(role)).Msg("Default user created")
	return user.ID, nil
}

func ensureCourses(ctx context.Context, courseRepo *appRepos.CourseRepository, lgr zerolog.Logger, instructorID int64) error {
	existing, err := courseRepo.Search(ctx, sampleCatalogFilter())
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing courses")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	var finalErr error
	for _, course := range sampleCourses(instructorID) {
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("title", course.Title).Msg("Sample course created")
	}

	return finalErr
}
