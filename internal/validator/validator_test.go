package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,is-user-role"`
	Status   string `json:"applicationStatus" validate:"omitempty,is-application-status"`
	Category string `json:"scholarshipCategory" validate:"omitempty,is-scholarship-category"`
	Subject  string `json:"subjectCategory" validate:"omitempty,is-subject-category"`
	Sort     string `form:"sort" validate:"omitempty,is-sort-key"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{
		Email:    "a@x.com",
		Role:     "moderator",
		Status:   "processing",
		Category: "NGO",
		Subject:  "Mechanical & Civil",
		Sort:     "rating_desc",
		Rating:   5,
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{
		Role:     "root",
		Status:   "archived",
		Category: "Private",
		Subject:  "History",
		Sort:     "random",
		Rating:   7,
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", verr.Errors["email"])
	assert.Contains(t, verr.Errors, "role")
	assert.Contains(t, verr.Errors, "applicationStatus")
	assert.Contains(t, verr.Errors, "scholarshipCategory")
	assert.Contains(t, verr.Errors, "subjectCategory")
	assert.Contains(t, verr.Errors, "sort")
	assert.Equal(t, "Must be at most 5", verr.Errors["rating"])
	assert.Contains(t, verr.Error(), "email: This field is required")
	assert.Equal(t, "Must be one of: student, moderator, admin", verr.Errors["role"])
}
