// Package validator wraps go-playground struct validation with the domain
// enum rules the request commands rely on.
package validator

import (
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	apperrors "github.com/edusphere/edusphere/internal/errors"
	"github.com/edusphere/edusphere/internal/models"
)

type Validator struct {
	structValidator *playground.Validate
}

// New creates a validator with all custom rules registered.
func New() *Validator {
	v := playground.New()
	registerCustomValidators(v)
	return &Validator{structValidator: v}
}

// Validate checks struct tags and converts failures into the shared
// ValidationErrors type.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if ve := apperrors.ToValidationErrors(err); len(ve) > 0 {
			return ve
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *playground.Validate) {
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("student_role", validateStudentRole)
	validate.RegisterValidation("theme", validateTheme)

	// Report fields by their json name for better error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateUserRole(fl playground.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.RoleStudent, models.RoleTeacher:
		return true
	}
	return false
}

func validateStudentRole(fl playground.FieldLevel) bool {
	switch models.StudentRole(fl.Field().String()) {
	case models.StudentRegular, models.StudentAssistantGovernor, models.StudentGovernor:
		return true
	}
	return false
}

func validateTheme(fl playground.FieldLevel) bool {
	switch models.Theme(fl.Field().String()) {
	case models.ThemeLight, models.ThemeDark:
		return true
	}
	return false
}
