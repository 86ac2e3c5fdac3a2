package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"scholarly_backend/internal/models"
)

// ValidationError - ошибки по полям запроса (имя поля берется из json/form тега)
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + e.Errors[field]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	registerCustomRules(v)
	return &Validator{validate: v}
}

func fieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "" {
		tag = fld.Tag.Get("form")
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

// Validate возвращает *ValidationError для невалидной структуры,
// прочие ошибки (например, не-структура) отдаются как есть.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{Errors: make(map[string]string, len(fieldErrors))}
	for _, fe := range fieldErrors {
		out.Errors[fe.Field()] = message(fe)
	}
	return out
}

func oneOf[T ~string](values ...T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "Must be one of: " + strings.Join(parts, ", ")
}

var fixedMessages = map[string]string{
	"required":                "This field is required",
	"email":                   "Must be a valid email address",
	"url":                     "Must be a valid URL",
	"uuid":                    "Must be a valid identifier",
	"is-user-role":            oneOf(models.UserRoleStudent, models.UserRoleModerator, models.UserRoleAdmin),
	"is-application-status":   oneOf(models.ApplicationStatusPending, models.ApplicationStatusProcessing, models.ApplicationStatusCompleted, models.ApplicationStatusRejected),
	"is-scholarship-category": oneOf(models.ScholarshipCategoryGovernment, models.ScholarshipCategoryCorporateCSR, models.ScholarshipCategoryInstitutional, models.ScholarshipCategoryNGO),
	"is-subject-category":     oneOf(models.SubjectCategories...),
	"is-sort-key":             oneOf(models.SortAmountAsc, models.SortAmountDesc, models.SortDeadlineAsc, models.SortDeadlineDesc, models.SortRatingDesc, models.SortNewest),
}

func message(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		if k := fe.Kind(); k == reflect.String || k == reflect.Slice {
			return fmt.Sprintf("Must be at least %s characters/items long", fe.Param())
		}
		return "Must be at least " + fe.Param()
	case "max":
		if k := fe.Kind(); k == reflect.String || k == reflect.Slice {
			return fmt.Sprintf("Must be at most %s characters/items long", fe.Param())
		}
		return "Must be at most " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "lte":
		return "Must be less than or equal to " + fe.Param()
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
}
