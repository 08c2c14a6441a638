package assistant

import "github.com/arohalabs/pocket-cfo-be/internal/catalog"

const newConversationTitle = "New Conversation"

// NewConversation returns an empty conversation awaiting its first
// message.
func NewConversation(id, timestamp string) catalog.Conversation {
	return catalog.Conversation{
		ID:        id,
		Title:     newConversationTitle,
		Timestamp: timestamp,
		Messages:  []catalog.ChatMessage{},
	}
}

// RetitleForQuestion names an untitled conversation after its first
// question. Conversations already titled keep their title.
func RetitleForQuestion(currentTitle, question string) string {
	if currentTitle != newConversationTitle {
		return currentTitle
	}
	runes := []rune(question)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes) + "..."
}
