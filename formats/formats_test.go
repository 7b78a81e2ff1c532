package formats_test

import (
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/planner/formats"
	"github.com/arthur-debert/planner/grades"
	"github.com/arthur-debert/planner/planner"
	"github.com/arthur-debert/planner/remind"
)

func clock(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestRegistryHasBuiltins(t *testing.T) {
	for _, name := range []string{"json", "yaml"} {
		format, err := formats.Get(name)
		if err != nil {
			t.Fatalf("expected built-in format %q: %v", name, err)
		}
		out, err := format.Render(map[string]string{"k": "v"})
		if err != nil {
			t.Fatalf("render %q failed: %v", name, err)
		}
		if !strings.Contains(out, "k") || !strings.Contains(out, "v") {
			t.Errorf("render %q produced %q", name, out)
		}
	}
}

func TestGetUnknownFormat(t *testing.T) {
	if _, err := formats.Get("xml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestRegisterRejectsBadNames(t *testing.T) {
	bad := []string{"", "JSON", "with space", "dash-ed"}
	for _, name := range bad {
		err := formats.Register(&formats.Format{
			Name:   name,
			Render: func(v interface{}) (string, error) { return "", nil },
		})
		if err == nil {
			t.Errorf("expected name %q rejected", name)
		}
	}

	// Re-registering a taken name fails too.
	if err := formats.Register(&formats.Format{
		Name:   "json",
		Render: func(v interface{}) (string, error) { return "", nil },
	}); err == nil {
		t.Error("expected duplicate registration rejected")
	}
}

func TestCourseList(t *testing.T) {
	out := formats.CourseList([]planner.Course{
		{Name: "Algorithms", Day: planner.Monday, StartTime: clock(9, 0), EndTime: clock(10, 30), Location: "B12"},
	})
	for _, want := range []string{"Algorithms", "Monday 09:00 - 10:30", "B12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	if got := formats.CourseList(nil); got != "No courses scheduled.\n" {
		t.Errorf("unexpected empty rendering %q", got)
	}
}

func TestAssignmentListMarkers(t *testing.T) {
	out := formats.AssignmentList([]planner.Assignment{
		{Title: "Essay", Priority: planner.PriorityHigh, Completed: false},
		{Title: "Lab", Priority: planner.PriorityLow, Completed: true, Course: "Physics"},
	})

	if !strings.Contains(out, "○ Essay [High]") {
		t.Errorf("expected pending marker, got:\n%s", out)
	}
	if !strings.Contains(out, "● Lab [Low] (Physics)") {
		t.Errorf("expected completed marker with course, got:\n%s", out)
	}
}

func TestGradeReport(t *testing.T) {
	out := formats.GradeReport([]planner.GradeCourse{
		{
			Name: "Calculus",
			Components: []planner.GradeComponent{
				{Name: "Midterm", Weight: "60", Score: "80"},
				{Name: "Final", Weight: "40", Score: ""},
			},
		},
	})

	if !strings.Contains(out, "Calculus") {
		t.Errorf("expected course name, got:\n%s", out)
	}
	// An empty score renders as 0 and counts as 0 in the grade.
	if !strings.Contains(out, "Current Grade: 48.0%") {
		t.Errorf("expected current grade 48.0%%, got:\n%s", out)
	}
}

func TestReminderList(t *testing.T) {
	date := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	out := formats.ReminderList([]remind.Reminder{
		{Title: "Lab report", Date: date, NotificationID: "n-1"},
		{Title: "Dentist", Date: date},
	})

	if !strings.Contains(out, "Lab report at 2026-09-10 08:00 (alert pending)") {
		t.Errorf("expected scheduled reminder line, got:\n%s", out)
	}
	if strings.Contains(out, "Dentist at 2026-09-10 08:00 (alert pending)") {
		t.Errorf("expected no pending marker without a handle, got:\n%s", out)
	}
}

func TestGradeHistory(t *testing.T) {
	entries := []grades.Result{
		{FinalPercent: 90, Point: 10, Label: "Excellent"},
		{FinalPercent: 72.5, Point: 8, Label: "Good"},
	}
	out := formats.GradeHistory(entries, 9, true)

	if !strings.Contains(out, "Excellent") || !strings.Contains(out, "Good") {
		t.Errorf("expected entries in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Average grade: 9.00") {
		t.Errorf("expected average line, got:\n%s", out)
	}

	if got := formats.GradeHistory(nil, 0, false); got != "No grades recorded.\n" {
		t.Errorf("unexpected empty rendering %q", got)
	}
}

func TestMarkdownSchedule(t *testing.T) {
	out := formats.MarkdownSchedule([]planner.Course{
		{Name: "Algorithms", Day: planner.Wednesday, StartTime: clock(9, 0), EndTime: clock(10, 30)},
		{Name: "Physics", Day: planner.Monday, StartTime: clock(11, 0), EndTime: clock(12, 0), Location: "Lab 3"},
	})

	// Days appear in week order regardless of record order.
	monday := strings.Index(out, "## Monday")
	wednesday := strings.Index(out, "## Wednesday")
	if monday == -1 || wednesday == -1 || monday > wednesday {
		t.Errorf("expected Monday before Wednesday, got:\n%s", out)
	}
	if strings.Contains(out, "## Friday") {
		t.Error("expected empty days omitted")
	}
	if !strings.Contains(out, "- 11:00 - 12:00 Physics (Lab 3)") {
		t.Errorf("expected course line with location, got:\n%s", out)
	}
}
