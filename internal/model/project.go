package model

import (
	"github.com/dustin/go-humanize/english"
	"github.com/google/uuid"
)

// Status is the lifecycle state of a project. It decides which list renders it.
type Status int

const (
	Active Status = iota
	Finished
)

// Statuses lists every status in display order.
var Statuses = []Status{Active, Finished}

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// MarshalText lets JSON and YAML encoders write the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Project is the domain model for one unit of work.
// Everything but Status is fixed once created.
type Project struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	People      int    `json:"people" yaml:"people"`
	Status      Status `json:"status" yaml:"status"`
}

// New builds an Active project with a fresh id. Callers validate the fields first.
func New(title, description string, people int) Project {
	return Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      Active,
	}
}

// Persons is the headcount phrase shown on a row: "1 person", "3 persons".
func (p Project) Persons() string {
	return english.Plural(p.People, "person", "persons")
}
