package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/assistant"
	"github.com/arohalabs/pocket-cfo-be/internal/repositories"
	"github.com/arohalabs/pocket-cfo-be/internal/shared/utils"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrReplyPending rejects a second question while the assistant is
	// still thinking about the first.
	ErrReplyPending = errors.New("a reply is already pending for this conversation")
)

// lastMessagePreviewLen caps the conversation list preview.
const lastMessagePreviewLen = 80

// ConversationService orchestrates the ask-the-CFO flow: it appends the
// user's question immediately and delivers the assistant's reply after
// the scheduler's thinking delay.
type ConversationService struct {
	container *state.Container
	responder assistant.Responder
	scheduler *assistant.Scheduler
	convLog   repositories.ConversationRepo // nil when no database is attached
	now       func() time.Time
}

func NewConversationService(
	container *state.Container,
	responder assistant.Responder,
	scheduler *assistant.Scheduler,
	convLog repositories.ConversationRepo,
) *ConversationService {
	return &ConversationService{
		container: container,
		responder: responder,
		scheduler: scheduler,
		convLog:   convLog,
		now:       time.Now,
	}
}

// List returns all conversations and the active selection.
func (s *ConversationService) List() ([]catalog.Conversation, string) {
	snap := s.container.Snapshot()
	return snap.Conversations, snap.ActiveConversationID
}

func (s *ConversationService) Get(id string) (catalog.Conversation, error) {
	snap := s.container.Snapshot()
	for _, conv := range snap.Conversations {
		if conv.ID == id {
			return conv, nil
		}
	}
	return catalog.Conversation{}, ErrConversationNotFound
}

// Create starts an empty conversation and makes it active.
func (s *ConversationService) Create() (catalog.Conversation, error) {
	created := assistant.NewConversation(uuid.NewString(), s.timestamp())
	err := s.container.Update(func(snap *state.Snapshot) error {
		snap.Conversations = append(snap.Conversations, created)
		snap.ActiveConversationID = created.ID
		return nil
	})
	if err != nil {
		return catalog.Conversation{}, err
	}
	return created, nil
}

// Delete removes a conversation and drops any reply still in flight for
// it. A deleted active selection falls back to the first remaining.
func (s *ConversationService) Delete(id string) error {
	s.scheduler.Cancel(id)
	return s.container.Update(func(snap *state.Snapshot) error {
		idx := -1
		for i, conv := range snap.Conversations {
			if conv.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrConversationNotFound
		}
		snap.Conversations = append(snap.Conversations[:idx], snap.Conversations[idx+1:]...)
		if snap.ActiveConversationID == id {
			snap.ActiveConversationID = ""
			if len(snap.Conversations) > 0 {
				snap.ActiveConversationID = snap.Conversations[0].ID
			}
		}
		return nil
	})
}

// SetActive switches conversations. A reply pending on the conversation
// being left is cancelled so it never lands as a stale message.
func (s *ConversationService) SetActive(id string) error {
	return s.container.Update(func(snap *state.Snapshot) error {
		found := false
		for _, conv := range snap.Conversations {
			if conv.ID == id {
				found = true
				break
			}
		}
		if !found {
			return ErrConversationNotFound
		}
		if snap.ActiveConversationID != "" && snap.ActiveConversationID != id {
			s.scheduler.Cancel(snap.ActiveConversationID)
		}
		snap.ActiveConversationID = id
		return nil
	})
}

// SendMessage appends the user's question and schedules the assistant's
// reply. The returned message is the user message; the reply arrives
// after the thinking delay.
func (s *ConversationService) SendMessage(conversationID, question string) (catalog.ChatMessage, error) {
	if _, err := s.Get(conversationID); err != nil {
		return catalog.ChatMessage{}, err
	}

	if !s.scheduler.Schedule(conversationID, func() { s.deliverReply(conversationID, question) }) {
		return catalog.ChatMessage{}, ErrReplyPending
	}

	userMsg := catalog.ChatMessage{
		ID:        uuid.NewString(),
		Role:      "user",
		Content:   question,
		Timestamp: s.timestamp(),
	}

	err := s.container.Update(func(snap *state.Snapshot) error {
		conv := findConversation(snap, conversationID)
		if conv == nil {
			return ErrConversationNotFound
		}
		conv.Messages = append(conv.Messages, userMsg)
		conv.Title = assistant.RetitleForQuestion(conv.Title, question)
		conv.LastMessage = question
		conv.Timestamp = userMsg.Timestamp
		snap.ActiveConversationID = conversationID
		return nil
	})
	if err != nil {
		s.scheduler.Cancel(conversationID)
		return catalog.ChatMessage{}, err
	}
	return userMsg, nil
}

// AwaitingReply reports whether the assistant is still thinking.
func (s *ConversationService) AwaitingReply(conversationID string) bool {
	return s.scheduler.Pending(conversationID)
}

func (s *ConversationService) deliverReply(conversationID, question string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reply, err := s.responder.Respond(ctx, question)
	if err != nil {
		utils.LogError("Assistant reply failed", err, map[string]interface{}{
			"conversation_id": conversationID,
		})
		return
	}

	assistantMsg := catalog.ChatMessage{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Content:   reply.Content,
		Timestamp: s.timestamp(),
		KPIDeltas: reply.KPIDeltas,
		Actions:   reply.Actions,
	}

	err = s.container.Update(func(snap *state.Snapshot) error {
		conv := findConversation(snap, conversationID)
		if conv == nil {
			return ErrConversationNotFound
		}
		conv.Messages = append(conv.Messages, assistantMsg)
		conv.LastMessage = previewOf(reply.Content)
		conv.Timestamp = assistantMsg.Timestamp
		return nil
	})
	if err != nil {
		// Conversation deleted while the reply was in flight.
		utils.LogDebug("Dropping reply for removed conversation", map[string]interface{}{
			"conversation_id": conversationID,
		})
		return
	}

	if s.convLog != nil {
		go func() {
			if err := s.convLog.LogExchange(conversationID, question, reply.Content, reply.KPIDeltas); err != nil {
				utils.LogWarn("Failed to log conversation exchange", map[string]interface{}{
					"conversation_id": conversationID,
					"error":           err.Error(),
				})
			}
		}()
	}
}

func (s *ConversationService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func findConversation(snap *state.Snapshot, id string) *catalog.Conversation {
	for i := range snap.Conversations {
		if snap.Conversations[i].ID == id {
			return &snap.Conversations[i]
		}
	}
	return nil
}

// previewOf truncates reply content for the conversation list.
func previewOf(content string) string {
	runes := []rune(content)
	if len(runes) > lastMessagePreviewLen {
		runes = runes[:lastMessagePreviewLen]
	}
	return string(runes) + "..."
}
