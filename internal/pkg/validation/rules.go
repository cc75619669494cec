package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/coursehub/coursehub/internal/app/models"
)

// PasswordMinLength is the minimum accepted password length
const PasswordMinLength = 8

// RegisterCustomValidations wires domain enum validations into gin's
// validator engine so DTO binding tags can reference them.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("courselevel", validateCourseLevel); err != nil {
		return err
	}
	if err := v.RegisterValidation("pricerange", validatePriceRange); err != nil {
		return err
	}
	return nil
}

// validateCourseLevel accepts the level enum plus the "All Levels" sentinel
// used by the search filter.
func validateCourseLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == models.AllLevels {
		return true
	}
	return models.ValidCourseLevel(value)
}

// validatePriceRange accepts the recognized price buckets; empty means "all".
func validatePriceRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidPriceRange(value)
}
