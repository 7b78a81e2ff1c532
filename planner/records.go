// Package planner holds the planner's domain records (courses,
// assignments and grade-tracked courses), their per-collection stores, and
// the App wiring that assembles a complete planner over one key-value
// backend.
package planner

import (
	"time"

	"github.com/arthur-debert/planner/grades"
)

// Day is a day of the week as shown in the schedule picker.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Priority is an assignment's urgency level.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Course is one scheduled class meeting.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"notblank"`
	Day       Day       `json:"day" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Location  string    `json:"location"`
}

func (c Course) RecordID() string { return c.ID }

func (c Course) WithRecordID(id string) Course {
	c.ID = id
	return c
}

// Assignment is one tracked piece of coursework.
type Assignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"notblank"`
	Course      string    `json:"course"`
	DueDate     time.Time `json:"dueDate"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
}

func (a Assignment) RecordID() string { return a.ID }

func (a Assignment) WithRecordID(id string) Assignment {
	a.ID = id
	return a
}

// GradeComponent is one graded part of a course: an exam, a project, a lab.
// Weight and score stay as the user entered them; the grade engine owns
// their parsing.
type GradeComponent struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"notblank"`
	Weight string `json:"weight" validate:"notblank"`
	Score  string `json:"score"`
}

// GradeCourse is a course whose grade is tracked through weighted
// components.
type GradeCourse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name" validate:"notblank"`
	Components []GradeComponent `json:"components"`
}

func (g GradeCourse) RecordID() string { return g.ID }

func (g GradeCourse) WithRecordID(id string) GradeCourse {
	g.ID = id
	return g
}

// CurrentGrade returns the course's weighted percentage over its
// components. No components means 0.
func (g GradeCourse) CurrentGrade() float64 {
	weighted := make([]grades.Weighted, len(g.Components))
	for i, c := range g.Components {
		weighted[i] = grades.Weighted{Weight: c.Weight, Score: c.Score}
	}
	return grades.WeightedAverage(weighted)
}
