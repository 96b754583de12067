package formatter

import (
	"fmt"
	"strings"

	"github.com/nataliatalam/raimon/internal/domain"
)

// FormatTaskList renders the open task list.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No open tasks. Add one with: raimon task add <title>") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Open tasks (%d)", len(tasks))))
	b.WriteString("\n\n")

	for _, t := range tasks {
		line := fmt.Sprintf("%s  %s  %s",
			Dim(TruncID(t.ID)),
			StyleFg.Render(t.Title),
			PriorityStyle(t.Priority).Render(string(t.Priority)),
		)
		if t.EstimatedMin != nil {
			line += "  " + StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(*t.EstimatedMin)))
		}
		if len(t.Tags) > 0 {
			line += "  " + Dim("#"+strings.Join(t.Tags, " #"))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
