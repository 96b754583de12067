package formatter

import (
	"fmt"
	"strings"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
)

// reasonLabels maps selection reason codes to short human phrasings.
var reasonLabels = map[string]string{
	contract.ReasonConstraintsFit:      "fits your time and energy",
	contract.ReasonFallbackBestOverall: "nothing fit perfectly, this is the best overall",
	contract.ReasonFallbackDirect:      "picked directly from your list",
	contract.ReasonTimeFit:             "fits your available time",
	contract.ReasonTimeOver:            "runs longer than your available time",
	contract.ReasonEnergyFit:           "matches your energy",
	contract.ReasonEnergyOver:          "needs more energy than you have",
	contract.ReasonPriorityPreferred:   "matches your preferred priority",
}

// FormatNext renders a do-next result: the chosen task, why, the coaching
// message, and up to two alternatives.
func FormatNext(data *contract.DoNextData, selected *domain.Task, alts []*domain.Task) string {
	var b strings.Builder

	if data.Mode != "" {
		b.WriteString(StylePurple.Render(fmt.Sprintf("MODE: %s", strings.ToUpper(data.Mode))))
		b.WriteString("\n\n")
	}

	b.WriteString(Header("Do this next"))
	b.WriteString("\n\n")

	title := data.TaskID
	if selected != nil {
		title = selected.Title
	}
	line := Bold(title)
	if selected != nil && selected.EstimatedMin != nil {
		line += "  " + StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(*selected.EstimatedMin)))
	}
	if selected != nil {
		line += "  " + PriorityStyle(selected.Priority).Render(string(selected.Priority))
	}
	b.WriteString(line + "\n")

	for _, code := range data.ReasonCodes {
		label, ok := reasonLabels[code]
		if !ok {
			label = code
		}
		b.WriteString(fmt.Sprintf("   %s\n", Dim("• "+label)))
	}

	if data.Coaching != nil {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render(data.Coaching.Title))
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(data.Coaching.Message))
		b.WriteString("\n")
		b.WriteString(Dim("Next step: " + data.Coaching.NextStep))
		b.WriteString("\n")
	}

	if len(alts) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Also on deck:"))
		b.WriteString("\n")
		for _, alt := range alts {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim(TruncID(alt.ID)), StyleFg.Render(alt.Title)))
		}
	}

	return b.String()
}
