package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/planner/planner"
)

// MarkdownSchedule renders the week's course schedule as a markdown
// document, one section per day that has courses, days in week order.
func MarkdownSchedule(courses []planner.Course) string {
	var sb strings.Builder
	sb.WriteString("# Course Schedule\n")

	days := []planner.Day{
		planner.Monday, planner.Tuesday, planner.Wednesday, planner.Thursday,
		planner.Friday, planner.Saturday, planner.Sunday,
	}
	for _, day := range days {
		var todays []planner.Course
		for _, c := range courses {
			if c.Day == day {
				todays = append(todays, c)
			}
		}
		if len(todays) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n## %s\n\n", day)
		for _, c := range todays {
			fmt.Fprintf(&sb, "- %s - %s %s", c.StartTime.Format(timeLayout),
				c.EndTime.Format(timeLayout), c.Name)
			if c.Location != "" {
				fmt.Fprintf(&sb, " (%s)", c.Location)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
