package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_AbsentNullValue(t *testing.T) {
	var p TaskPatch

	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &p))
	assert.False(t, p.AssignedTo.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"assignedTo":null}`), &p))
	assert.True(t, p.AssignedTo.Set)
	assert.False(t, p.AssignedTo.Valid)
	assert.Nil(t, p.AssignedTo.Ptr())

	p = TaskPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"assignedTo":"Mom"}`), &p))
	require.NotNil(t, p.AssignedTo.Ptr())
	assert.Equal(t, "Mom", *p.AssignedTo.Ptr())
}

func TestNullable_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Nullable[string] `json:"a"`
		B Nullable[string] `json:"b"`
	}{A: Some("x"), B: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(b))
}

func TestNullable_RejectsWrongType(t *testing.T) {
	var p TaskPatch
	assert.Error(t, json.Unmarshal([]byte(`{"notes":42}`), &p))
}
