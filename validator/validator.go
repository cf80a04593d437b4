package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("entityname", validateEntityName)
	v.RegisterValidation("memberrole", validateMemberRole)
	v.RegisterValidation("permlevel", validatePermLevel)
	v.RegisterValidation("targettype", validateTargetType)
	v.RegisterValidation("recurrence", validateRecurrence)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "uuid4":
		return fmt.Sprintf("%s must be a valid id", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #4a7aab", field)
	case "entityname":
		return fmt.Sprintf("%s contains invalid characters (only letters, numbers, spaces, and -_.,&() are allowed)", field)
	case "memberrole":
		return fmt.Sprintf("%s must be one of: owner, adult, child", field)
	case "permlevel":
		return fmt.Sprintf("%s must be one of: view, contribute, manage", field)
	case "targettype":
		return fmt.Sprintf("%s must be one of: file, folder, category, space", field)
	case "recurrence":
		return fmt.Sprintf("%s must be one of: none, daily, weekly, monthly, yearly", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateEntityName validates names for families, spaces, categories, folders
func validateEntityName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	// Allow letters (any language), numbers, spaces, and specific symbols
	validName := regexp.MustCompile(`^[\p{L}\p{N}\s\-_.,&()]+$`)
	return validName.MatchString(name)
}

// validateMemberRole validates family member roles
func validateMemberRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	validRoles := map[string]bool{
		"owner": true,
		"adult": true,
		"child": true,
	}
	return validRoles[role]
}

// validatePermLevel validates permission levels
func validatePermLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	validLevels := map[string]bool{
		"view":       true,
		"contribute": true,
		"manage":     true,
	}
	return validLevels[level]
}

// validateTargetType validates permission target types
func validateTargetType(fl validator.FieldLevel) bool {
	target := fl.Field().String()
	validTargets := map[string]bool{
		"file":     true,
		"folder":   true,
		"category": true,
		"space":    true,
	}
	return validTargets[target]
}

// validateRecurrence validates alert recurrence intervals
func validateRecurrence(fl validator.FieldLevel) bool {
	recurrence := fl.Field().String()
	validIntervals := map[string]bool{
		"none":    true,
		"daily":   true,
		"weekly":  true,
		"monthly": true,
		"yearly":  true,
	}
	return validIntervals[recurrence]
}
