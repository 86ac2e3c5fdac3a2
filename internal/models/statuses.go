package models

type UserRole string
type ApplicationStatus string
type ScholarshipCategory string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusPending    ApplicationStatus = "pending"
	ApplicationStatusProcessing ApplicationStatus = "processing"
	ApplicationStatusCompleted  ApplicationStatus = "completed"
	ApplicationStatusRejected   ApplicationStatus = "rejected"

	ScholarshipCategoryGovernment    ScholarshipCategory = "Government"
	ScholarshipCategoryCorporateCSR  ScholarshipCategory = "Corporate CSR"
	ScholarshipCategoryInstitutional ScholarshipCategory = "Institutional"
	ScholarshipCategoryNGO           ScholarshipCategory = "NGO"
)

// SubjectCategories - допустимые значения subjectCategory
var SubjectCategories = []string{
	"Computer Science & IT",
	"Electronics & Communication",
	"Mechanical & Civil",
	"Electrical & Instrumentation",
	"Emerging Tech (AI/ML/Data Science)",
	"Core Engineering (Chemical/Metallurgy)",
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusProcessing, ApplicationStatusCompleted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Priority задает порядок сортировки заявок в админке.
func (s ApplicationStatus) Priority() int {
	switch s {
	case ApplicationStatusPending:
		return 0
	case ApplicationStatusProcessing:
		return 1
	case ApplicationStatusCompleted:
		return 2
	case ApplicationStatusRejected:
		return 3
	}
	return 99
}

func (c ScholarshipCategory) IsValid() bool {
	switch c {
	case ScholarshipCategoryGovernment, ScholarshipCategoryCorporateCSR, ScholarshipCategoryInstitutional, ScholarshipCategoryNGO:
		return true
	}
	return false
}

func IsSubjectCategory(value string) bool {
	for _, s := range SubjectCategories {
		if s == value {
			return true
		}
	}
	return false
}

// ScholarshipSort - ключи сортировки каталога
type ScholarshipSort string

const (
	SortAmountAsc    ScholarshipSort = "amount_asc"
	SortAmountDesc   ScholarshipSort = "amount_desc"
	SortDeadlineAsc  ScholarshipSort = "deadline_asc"
	SortDeadlineDesc ScholarshipSort = "deadline_desc"
	SortRatingDesc   ScholarshipSort = "rating_desc"
	SortNewest       ScholarshipSort = "newest"
)

func (s ScholarshipSort) IsValid() bool {
	switch s {
	case SortAmountAsc, SortAmountDesc, SortDeadlineAsc, SortDeadlineDesc, SortRatingDesc, SortNewest:
		return true
	}
	return false
}

// applicationTransitions - допустимые переходы статуса заявки (только вперед)
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:    {ApplicationStatusProcessing, ApplicationStatusRejected},
	ApplicationStatusProcessing: {ApplicationStatusCompleted},
}

// CanTransitionTo - переход в тот же статус разрешен как no-op
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusCompleted || s == ApplicationStatusRejected
}
