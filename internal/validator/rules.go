package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"scholarly_backend/internal/models"
)

// registerCustomRules регистрирует кастомные теги для перечислений из statuses.go
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-scholarship-category", validateScholarshipCategory)
	mustRegister("is-subject-category", validateSubjectCategory)
	mustRegister("is-sort-key", validateSortKey)
}

// Пустые значения пропускаем, для этого есть 'required'

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ApplicationStatus(value).IsValid()
}

func validateScholarshipCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ScholarshipCategory(value).IsValid()
}

func validateSubjectCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsSubjectCategory(value)
}

func validateSortKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ScholarshipSort(value).IsValid()
}
