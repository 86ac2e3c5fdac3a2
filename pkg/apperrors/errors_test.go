package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsKeepsSentinelIntact(t *testing.T) {
	withDetails := ErrInvalidStatusTransition.WithDetails(map[string]string{"from": "completed", "to": "pending"})

	assert.Nil(t, ErrInvalidStatusTransition.Details)
	assert.NotNil(t, withDetails.Details)
	assert.True(t, errors.Is(withDetails, ErrInvalidStatusTransition))
}

func TestAsAppErrorUnwrapsChain(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrScholarshipNotFound)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalAlwaysHasMessage(t *testing.T) {
	raw, err := json.Marshal(ErrMissingSession)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "unauthorized access", body["message"])
	assert.Equal(t, string(CodeUnauthorized), body["code"])
	assert.NotContains(t, body, "details")
}

func handle(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleErrorHidesInternalDetailsWithoutDebug(t *testing.T) {
	SetDebug(false)
	t.Cleanup(func() { SetDebug(false) })

	code, body := handle(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body, "details")

	SetDebug(true)
	code, body = handle(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "pq: connection refused", body["details"])
}

func TestHandleErrorPassesClientErrors(t *testing.T) {
	code, body := handle(t, ErrInvalidID("scholarshipId"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "scholarshipId")

	code, _ = handle(t, ErrApplicationNotPending)
	assert.Equal(t, http.StatusConflict, code)
}
