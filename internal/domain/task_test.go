package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_BuildDefaults(t *testing.T) {
	in := NewTask{ListID: 3, Description: "buy milk", AssignedTo: Some("  ")}
	require.NoError(t, in.Validate())

	task := in.Build()
	assert.Equal(t, int64(3), task.ListID)
	assert.Equal(t, LevelMedium, task.Urgency)
	assert.Equal(t, LevelMedium, task.Importance)
	assert.False(t, task.Completed)
	assert.Nil(t, task.AssignedTo)
	assert.Nil(t, task.Notes)
}

func TestNewTask_Validate(t *testing.T) {
	cases := []struct {
		name  string
		in    NewTask
		field string
	}{
		{"blank description", NewTask{Description: "   "}, "description"},
		{"bad urgency", NewTask{Description: "x", Urgency: "urgent"}, "urgency"},
		{"bad importance", NewTask{Description: "x", Importance: "HIGH"}, "importance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestTaskPatch_ApplyOnlyTouchesSetFields(t *testing.T) {
	notes := "before dinner"
	who := "Dad"
	task := Task{ID: 1, ListID: 2, Description: "dishes", Notes: &notes, AssignedTo: &who,
		Urgency: LevelHigh, Importance: LevelLow}

	done := true
	p := TaskPatch{Completed: &done}
	p.Apply(&task)
	p.Apply(&task)

	assert.True(t, task.Completed)
	assert.Equal(t, "dishes", task.Description)
	assert.Equal(t, &notes, task.Notes)
	assert.Equal(t, "Dad", *task.AssignedTo)
	assert.Equal(t, LevelHigh, task.Urgency)
	assert.Equal(t, LevelLow, task.Importance)

	unassign := TaskPatch{AssignedTo: Null[string]()}
	unassign.Apply(&task)
	assert.Nil(t, task.AssignedTo)
}

func TestTaskPatch_Empty(t *testing.T) {
	assert.True(t, (&TaskPatch{}).Empty())
	assert.False(t, (&TaskPatch{Notes: Null[string]()}).Empty())
}

func TestListPatch_Validate(t *testing.T) {
	empty := ""
	p := ListPatch{Name: &empty}
	assert.Error(t, p.Validate())

	p = ListPatch{Description: Null[string]()}
	assert.NoError(t, p.Validate())
	assert.False(t, p.Empty())
}
