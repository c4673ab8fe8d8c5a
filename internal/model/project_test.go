package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsActiveWithFreshID(t *testing.T) {
	a := New("Build API", "Implement REST endpoints", 3)
	b := New("Build API", "Implement REST endpoints", 3)

	assert.Equal(t, Active, a.Status)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPersons(t *testing.T) {
	assert.Equal(t, "1 person", Project{People: 1}.Persons())
	assert.Equal(t, "3 persons", Project{People: 3}.Persons())
	assert.Equal(t, "5 persons", Project{People: 5}.Persons())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "unknown", Status(9).String())
}
