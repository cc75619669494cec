package seed

import (
	appModels "github.com/coursehub/coursehub/internal/app/models"
	"github.com/coursehub/coursehub/internal/app/models/dto"
)

// sampleCatalogFilter is an unconstrained filter used to probe for an empty
// catalog before seeding.
func sampleCatalogFilter() dto.CourseFilter {
	return dto.CourseFilter{}
}

func floatPtr(v float64) *float64 { return &v }

// sampleCourses returns the starter catalog attributed to the given
// instructor.
func sampleCourses(instructorID int64) []*appModels.Course {
	return []*appModels.Course{
		{
			Title:         "Complete React Development Course",
			Description:   "Master React from basics to advanced concepts including hooks, context, and modern patterns. Build real-world projects and learn industry best practices.",
			InstructorID:  instructorID,
			Price:         89.99,
			OriginalPrice: floatPtr(129.99),
			Image:         "/react-development-course.png",
			Category:      "Web Development",
			Level:         appModels.LevelIntermediate,
			Duration:      "12 hours",
			Rating:        4.8,
			ReviewsCount:  324,
			Tags:          []string{"React", "JavaScript", "Frontend", "Hooks"},
			IsPopular:     true,
			IsBestseller:  true,
			Lessons: []*appModels.Lesson{
				{Position: 1, Title: "Introduction to React", Duration: "15 min", Description: "Getting started with React"},
				{Position: 2, Title: "Components and JSX", Duration: "20 min", Description: "Understanding React components"},
				{Position: 3, Title: "State and Props", Duration: "25 min", Description: "Managing component state"},
			},
		},
		{
			Title:         "Node.js Backend Development",
			Description:   "Learn to build scalable backend applications with Node.js, Express, and MongoDB. Cover authentication, APIs, and deployment.",
			InstructorID:  instructorID,
			Price:         79.99,
			OriginalPrice: floatPtr(99.99),
			Image:         "/nodejs-backend.png",
			Category:      "Backend Development",
			Level:         appModels.LevelIntermediate,
			Duration:      "10 hours",
			Rating:        4.7,
			ReviewsCount:  256,
			Tags:          []string{"Node.js", "Express", "MongoDB", "API"},
			IsPopular:     true,
			Lessons: []*appModels.Lesson{
				{Position: 1, Title: "Node.js Fundamentals", Duration: "18 min", Description: "Understanding Node.js runtime"},
				{Position: 2, Title: "Express Framework", Duration: "22 min", Description: "Building web servers with Express"},
			},
		},
		{
			Title:         "Python for Data Science",
			Description:   "Comprehensive Python course covering data analysis, visualization, and machine learning fundamentals using pandas, matplotlib, and scikit-learn.",
			InstructorID:  instructorID,
			Price:         94.99,
			OriginalPrice: floatPtr(149.99),
			Image:         "/python-data-science.png",
			Category:      "Data Science",
			Level:         appModels.LevelBeginner,
			Duration:      "15 hours",
			Rating:        4.9,
			ReviewsCount:  445,
			Tags:          []string{"Python", "Data Science", "Machine Learning", "Pandas"},
			IsBestseller:  true,
			Lessons: []*appModels.Lesson{
				{Position: 1, Title: "Python Basics", Duration: "20 min", Description: "Python fundamentals for data science"},
				{Position: 2, Title: "Working with Pandas", Duration: "30 min", Description: "Data manipulation with pandas"},
			},
		},
	}
}
