package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate(t *testing.T) {
	c := Credentials{Username: "  mom ", Password: "secret123"}
	require.NoError(t, c.Validate())
	assert.Equal(t, "mom", c.Username)

	c = Credentials{Username: " \t ", Password: "secret123"}
	var verr *ValidationError
	require.ErrorAs(t, c.Validate(), &verr)
	assert.Equal(t, "username is required", verr.Error())

	c = Credentials{Username: strings.Repeat("я", 64), Password: "secret123"}
	assert.NoError(t, c.Validate())
	c = Credentials{Username: strings.Repeat("я", 65), Password: "secret123"}
	assert.Error(t, c.Validate())
}

func TestValidate_CountsCharacters(t *testing.T) {
	name := strings.Repeat("д", 150)
	require.Greater(t, len(name), maxListName)

	l := NewList{Name: name}
	assert.NoError(t, l.Validate())
	l = NewList{Name: strings.Repeat("д", 201)}
	assert.Error(t, l.Validate())

	task := NewTask{Description: strings.Repeat("ü", 500), AssignedTo: Some(strings.Repeat("ö", 100))}
	assert.NoError(t, task.Validate())

	desc := strings.Repeat("ß", 400)
	p := TaskPatch{Description: &desc}
	assert.NoError(t, p.Validate())
}
