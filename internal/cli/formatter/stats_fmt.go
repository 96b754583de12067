package formatter

import (
	"fmt"
	"strings"

	"github.com/nataliatalam/raimon/internal/domain"
)

// FormatStats renders the streak and totals summary.
func FormatStats(stats *domain.UserStats) string {
	var b strings.Builder
	b.WriteString(Header("Your progress"))
	b.WriteString("\n\n")

	streakStyle := StyleDim
	if stats.StreakDays > 0 {
		streakStyle = StyleGreen
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Streak:"), streakStyle.Render(fmt.Sprintf("%d days", stats.StreakDays))))
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Completed:"), stats.TotalCompleted))
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Skipped:"), stats.TotalSkipped))
	if stats.LastCompletedDay != "" {
		b.WriteString(Dim("Last completion: "+stats.LastCompletedDay) + "\n")
	}
	return b.String()
}
