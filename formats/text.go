package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/planner/grades"
	"github.com/arthur-debert/planner/planner"
	"github.com/arthur-debert/planner/remind"
)

const timeLayout = "15:04"

// CourseList renders the course schedule as plain text, one course per
// block, in schedule order.
func CourseList(courses []planner.Course) string {
	if len(courses) == 0 {
		return "No courses scheduled.\n"
	}

	var sb strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&sb, "%s\n", c.Name)
		fmt.Fprintf(&sb, "  %s %s - %s\n", c.Day,
			c.StartTime.Format(timeLayout), c.EndTime.Format(timeLayout))
		if c.Location != "" {
			fmt.Fprintf(&sb, "  %s\n", c.Location)
		}
	}
	return sb.String()
}

// AssignmentList renders assignments with their completion marker,
// ○ for pending and ● for done.
func AssignmentList(assignments []planner.Assignment) string {
	if len(assignments) == 0 {
		return "No assignments.\n"
	}

	var sb strings.Builder
	for _, a := range assignments {
		symbol := "○"
		if a.Completed {
			symbol = "●"
		}
		fmt.Fprintf(&sb, "%s %s [%s]", symbol, a.Title, a.Priority)
		if a.Course != "" {
			fmt.Fprintf(&sb, " (%s)", a.Course)
		}
		fmt.Fprintf(&sb, "\n  due %s\n", a.DueDate.Format("2006-01-02 15:04"))
		if a.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", a.Description)
		}
	}
	return sb.String()
}

// GradeReport renders grade-tracked courses with their components and
// current weighted grade.
func GradeReport(courses []planner.GradeCourse) string {
	if len(courses) == 0 {
		return "No grade-tracked courses.\n"
	}

	var sb strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&sb, "%s\n", c.Name)
		for _, comp := range c.Components {
			score := comp.Score
			if score == "" {
				score = "0"
			}
			fmt.Fprintf(&sb, "  %-20s %5s%%  %5s%%\n", comp.Name, comp.Weight, score)
		}
		fmt.Fprintf(&sb, "  Current Grade: %.1f%%\n", c.CurrentGrade())
	}
	return sb.String()
}

// ReminderList renders reminders and whether an alert is pending.
func ReminderList(reminders []remind.Reminder) string {
	if len(reminders) == 0 {
		return "No reminders.\n"
	}

	var sb strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&sb, "%s at %s", r.Title, r.Date.Format("2006-01-02 15:04"))
		if r.NotificationID != "" {
			sb.WriteString(" (alert pending)")
		}
		sb.WriteString("\n")
		if r.Body != "" {
			fmt.Fprintf(&sb, "  %s\n", r.Body)
		}
	}
	return sb.String()
}

// GradeHistory renders the two-component calculator's session history and
// average grade point.
func GradeHistory(entries []grades.Result, avg float64, hasAvg bool) string {
	if len(entries) == 0 {
		return "No grades recorded.\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%6.2f%%  %2d  %-12s  %s\n", e.FinalPercent, e.Point, e.Label, e.ID)
	}
	if hasAvg {
		fmt.Fprintf(&sb, "Average grade: %.2f\n", avg)
	}
	return sb.String()
}
