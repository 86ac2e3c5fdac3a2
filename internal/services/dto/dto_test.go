package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountAcceptsNumbersAndFormattedStrings(t *testing.T) {
	var req struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 1500.5, "b": "1,20,000", "c": " 2,500 "}`), &req)
	require.NoError(t, err)
	assert.Equal(t, 1500.5, req.A.Float64())
	assert.Equal(t, 120000.0, req.B.Float64())
	assert.Equal(t, 2500.0, req.C.Float64())
}

func TestAmountRejectsGarbage(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"ten thousand"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))

	for _, raw := range []string{`"Infinity"`, `"-Inf"`, `"NaN"`} {
		a = 42
		assert.Error(t, json.Unmarshal([]byte(raw), &a), raw)
		assert.Equal(t, Amount(42), a, raw)
	}
}

func TestCreateScholarshipRequestRejectsInfiniteAmount(t *testing.T) {
	var req CreateScholarshipRequest
	err := json.Unmarshal([]byte(`{"scholarshipAmount":"Infinity"}`), &req)
	assert.ErrorContains(t, err, "invalid amount")
}

func TestDateLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-31"`), &d))
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2025-03-31T10:00:00+05:30"`), &d))
	assert.Equal(t, time.Date(2025, 3, 31, 4, 30, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"31/03/2025"`), &d))
}

func TestScholarshipQueryAliases(t *testing.T) {
	q := ScholarshipQuery{SchCat: "NGO", SubCat: "Mechanical & Civil"}
	assert.Equal(t, "NGO", q.Category())
	assert.Equal(t, "Mechanical & Civil", q.Subject())

	q.ScholarshipCategory = "Government"
	assert.Equal(t, "Government", q.Category())
}

func TestUpdateApplicationRequestParts(t *testing.T) {
	phone := "123"
	status := "processing"
	assert.True(t, (&UpdateApplicationRequest{Phone: &phone}).HasDetails())
	assert.False(t, (&UpdateApplicationRequest{Phone: &phone}).HasReview())
	assert.True(t, (&UpdateApplicationRequest{ApplicationStatus: &status}).HasReview())
}
