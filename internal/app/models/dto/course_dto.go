package dto

// CourseFilter carries the optional search filters recognized by the course
// listing endpoint. Empty values and the "All ..." sentinels apply no
// constraint on their dimension.
type CourseFilter struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Level      string `form:"level" binding:"omitempty,courselevel"`
	PriceRange string `form:"priceRange" binding:"omitempty,pricerange"`
}

// LessonInput is a lesson entry within a course create/update request. Order
// in the request body defines the lesson order.
type LessonInput struct {
	Title       string `json:"title" binding:"required"`
	Duration    string `json:"duration"`
	VideoURL    string `json:"videoUrl"`
	Description string `json:"description"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title         string        `json:"title" binding:"required"`
	Description   string        `json:"description" binding:"required"`
	InstructorID  int64         `json:"instructorId" binding:"required,gt=0"`
	Price         float64       `json:"price" binding:"min=0"`
	OriginalPrice *float64      `json:"originalPrice" binding:"omitempty,min=0"`
	Image         string        `json:"image"`
	Category      string        `json:"category" binding:"required"`
	Level         string        `json:"level" binding:"required,courselevel"`
	Duration      string        `json:"duration"`
	Tags          []string      `json:"tags"`
	IsPopular     bool          `json:"isPopular"`
	IsBestseller  bool          `json:"isBestseller"`
	Lessons       []LessonInput `json:"lessons" binding:"omitempty,dive"`
}

// UpdateCourseRequest represents course update data. Lessons, when present,
// replace the course's lesson list.
type UpdateCourseRequest struct {
	Title         string        `json:"title" binding:"required"`
	Description   string        `json:"description" binding:"required"`
	Price         float64       `json:"price" binding:"min=0"`
	OriginalPrice *float64      `json:"originalPrice" binding:"omitempty,min=0"`
	Image         string        `json:"image"`
	Category      string        `json:"category" binding:"required"`
	Level         string        `json:"level" binding:"required,courselevel"`
	Duration      string        `json:"duration"`
	Tags          []string      `json:"tags"`
	IsPopular     bool          `json:"isPopular"`
	IsBestseller  bool          `json:"isBestseller"`
	Lessons       []LessonInput `json:"lessons" binding:"omitempty,dive"`
}
