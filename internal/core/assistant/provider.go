// Package assistant implements the conversational CFO responder. The
// only provider is the canned analysis template; replies are delivered
// through a cancellable scheduler that simulates thinking time.
package assistant

import (
	"context"
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// Reply is the assistant's answer to one question.
type Reply struct {
	Content   string
	KPIDeltas []catalog.KPIDelta
	Actions   []string
}

// Responder produces a reply for a free-text question.
type Responder interface {
	Respond(ctx context.Context, question string) (Reply, error)
}

// NewResponder creates a responder by provider name.
func NewResponder(provider string) (Responder, error) {
	switch provider {
	case "template", "":
		return NewTemplateResponder(), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", provider)
	}
}
