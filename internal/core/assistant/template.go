package assistant

import (
	"context"
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

const analysisTemplate = "Based on your question about \"%s\", here's my analysis:\n\n" +
	"**Financial Impact:**\n" +
	"- This would affect your runway and cash position\n" +
	"- Consider the timing and strategic implications\n" +
	"- Alternative scenarios could provide different outcomes\n\n" +
	"**Recommendations:**\n" +
	"- Review your current burn rate trends\n" +
	"- Consider phased implementation\n" +
	"- Monitor key metrics closely\n\n" +
	"Would you like me to create a detailed scenario analysis for this?"

// ReplyActions are the follow-up actions attached to every reply.
var ReplyActions = []string{"Create Scenario from this", "Export as Investor Update"}

// TemplateResponder answers every question with the same analysis
// template, embedding the question verbatim. The KPI deltas are
// illustrative constants, not derived from the question.
type TemplateResponder struct{}

func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{}
}

func (r *TemplateResponder) Respond(ctx context.Context, question string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	return Reply{
		Content: fmt.Sprintf(analysisTemplate, question),
		KPIDeltas: []catalog.KPIDelta{
			{Name: "Runway", From: 12.5, To: 10.8},
			{Name: "Monthly Burn", From: 145000, To: 162000},
		},
		Actions: append([]string(nil), ReplyActions...),
	}, nil
}
