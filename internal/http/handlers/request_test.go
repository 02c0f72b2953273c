package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"family_tasks/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeBody(t *testing.T, body string, dst any) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return decodeStrict(c, dst)
}

func TestDecodeStrict_TaskPatch(t *testing.T) {
	var patch domain.TaskPatch
	require.NoError(t, decodeBody(t, `{"completed":true,"assignedTo":null}`, &patch))
	require.NotNil(t, patch.Completed)
	assert.True(t, *patch.Completed)
	assert.True(t, patch.AssignedTo.Set)
	assert.False(t, patch.AssignedTo.Valid)
	assert.False(t, patch.Notes.Set)
}

func TestDecodeStrict_Messages(t *testing.T) {
	cases := []struct {
		name string
		body string
		dst  any
		want string
	}{
		{"unknown field", `{"name":"a","color":"red"}`, &domain.NewList{}, "color is not allowed"},
		{"missing name", `{"description":"x"}`, &domain.NewList{}, "name is required"},
		{"long name", `{"name":"` + strings.Repeat("a", 201) + `"}`, &domain.NewList{}, "name must be at most 200 characters"},
		{"blank description", `{"description":"   "}`, &domain.NewTask{}, "description is required"},
		{"bad importance", `{"description":"x","importance":"max"}`, &domain.NewTask{}, "importance must be one of low medium high"},
		{"bad patch urgency", `{"urgency":"soon"}`, &domain.TaskPatch{}, "urgency must be one of low medium high"},
		{"wrong type", `{"completed":"yes"}`, &domain.TaskPatch{}, "completed has the wrong type"},
		{"trailing data", `{"completed":true}{"completed":false}`, &domain.TaskPatch{}, "body must contain a single JSON object"},
		{"array", `[]`, &domain.TaskPatch{}, "body is not valid JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := decodeBody(t, tc.body, tc.dst)
			require.Error(t, err)
			msg, ok := validationMessage(err)
			require.True(t, ok, "not a validation error: %v", err)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestValidationMessage_IgnoresOtherErrors(t *testing.T) {
	_, ok := validationMessage(errors.New("boom"))
	assert.False(t, ok)
	_, ok = validationMessage(domain.ErrNotFound)
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	for raw, want := range map[string]int64{"1": 1, "42": 42} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, ok := parseID(c, "id")
		assert.True(t, ok)
		assert.Equal(t, want, id)
	}

	for _, raw := range []string{"", "abc", "0", "-3", "9999999999999999999999"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := parseID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUsernameTaken, http.StatusBadRequest},
		{&domain.ValidationError{Field: "name", Reason: "is required"}, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, errors.New("pq: secret details"))
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}
