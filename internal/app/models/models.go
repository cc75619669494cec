package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
	RoleAdmin      RoleType = "admin"
)

// CourseLevel represents the difficulty level of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// ValidCourseLevel reports whether the given string is a known course level.
func ValidCourseLevel(level string) bool {
	switch CourseLevel(level) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// EnrollmentStatus represents the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentPending   EnrollmentStatus = "pending"
)

// Sentinel filter values meaning "no constraint on this dimension"
const (
	AllCategories = "All Categories"
	AllLevels     = "All Levels"
	AllPrices     = "all"
)

// Price range buckets recognized by the course search filter
const (
	PriceFree    = "free"
	PriceUnder50 = "under-50"
	Price50To100 = "50-100"
	PriceOver100 = "over-100"
)

// ValidPriceRange reports whether the given string is a recognized price bucket.
func ValidPriceRange(pr string) bool {
	switch pr {
	case AllPrices, PriceFree, PriceUnder50, Price50To100, PriceOver100:
		return true
	}
	return false
}
