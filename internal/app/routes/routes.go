package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coursehub/coursehub/internal/app/controllers"
	"github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
	"github.com/coursehub/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Course routes ---
	courses := v1.Group("/courses")
	{
		// Catalog browsing is public
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		// Course management is restricted to instructors and admins
		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.JWTAuth())
		coursesProtected.Use(authMiddleware.RoleRequired(
			string(models.RoleInstructor),
			string(models.RoleAdmin),
		))
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// --- Enrollment routes ---
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.GET("/user/:userId", enrollmentController.ListByUser)
		enrollments.GET("/course/:courseId", enrollmentController.ListByCourse)
		enrollments.PUT("/:id/progress", enrollmentController.UpdateProgress)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	// --- User routes ---
	users := v1.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)

		usersProtected := users.Group("")
		usersProtected.Use(authMiddleware.JWTAuth())
		{
			usersProtected.PUT("/:id", userController.UpdateUser)
			usersProtected.POST("/:id/enroll/:courseId", userController.EnrollInCourse)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are mounted separately via SetupSwagger
}
