package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/core/assistant"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newConversationService(t *testing.T, delay time.Duration) *ConversationService {
	t.Helper()
	responder, err := assistant.NewResponder("template")
	require.NoError(t, err)

	scheduler := assistant.NewScheduler(delay)
	t.Cleanup(scheduler.Shutdown)

	container := state.NewContainer(state.DefaultSnapshot(), nil)
	return NewConversationService(container, responder, scheduler, nil)
}

func TestConversationServiceCreate(t *testing.T) {
	svc := newConversationService(t, time.Minute)

	before, _ := svc.List()
	created, err := svc.Create()
	require.NoError(t, err)

	assert.Equal(t, "New Conversation", created.Title)
	assert.Empty(t, created.Messages)

	after, active := svc.List()
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, active)
}

func TestConversationServiceSendMessage(t *testing.T) {
	svc := newConversationService(t, 10*time.Millisecond)

	created, err := svc.Create()
	require.NoError(t, err)

	question := "How do I extend my runway through the winter season?"
	userMsg, err := svc.SendMessage(created.ID, question)
	require.NoError(t, err)
	assert.Equal(t, "user", userMsg.Role)
	assert.Equal(t, question, userMsg.Content)

	conv, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, question, conv.LastMessage)
	assert.True(t, strings.HasSuffix(conv.Title, "..."))
	assert.True(t, svc.AwaitingReply(created.ID))

	require.Eventually(t, func() bool {
		conv, err := svc.Get(created.ID)
		return err == nil && len(conv.Messages) == 2
	}, 2*time.Second, 5*time.Millisecond)

	conv, err = svc.Get(created.ID)
	require.NoError(t, err)
	reply := conv.Messages[1]
	assert.Equal(t, "assistant", reply.Role)
	assert.Contains(t, reply.Content, question)
	assert.Len(t, reply.KPIDeltas, 2)
	assert.True(t, strings.HasSuffix(conv.LastMessage, "..."))
	assert.False(t, svc.AwaitingReply(created.ID))
}

func TestConversationServiceRejectsSecondQuestionWhilePending(t *testing.T) {
	svc := newConversationService(t, time.Minute)

	created, err := svc.Create()
	require.NoError(t, err)

	_, err = svc.SendMessage(created.ID, "First question")
	require.NoError(t, err)

	_, err = svc.SendMessage(created.ID, "Second question")
	assert.ErrorIs(t, err, ErrReplyPending)
}

func TestConversationServiceSendToUnknownConversation(t *testing.T) {
	svc := newConversationService(t, time.Minute)

	_, err := svc.SendMessage("missing", "Hello?")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestConversationServiceSwitchCancelsPendingReply(t *testing.T) {
	svc := newConversationService(t, 50*time.Millisecond)

	first, err := svc.Create()
	require.NoError(t, err)
	second, err := svc.Create()
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(first.ID))
	_, err = svc.SendMessage(first.ID, "Question that will be abandoned")
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(second.ID))
	assert.False(t, svc.AwaitingReply(first.ID))

	time.Sleep(150 * time.Millisecond)
	conv, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 1, "cancelled reply never lands")
}

func TestConversationServiceDelete(t *testing.T) {
	svc := newConversationService(t, time.Minute)

	created, err := svc.Create()
	require.NoError(t, err)
	_, err = svc.SendMessage(created.ID, "Doomed question")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.False(t, svc.AwaitingReply(created.ID))

	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	conversations, active := svc.List()
	require.NotEmpty(t, conversations)
	assert.Equal(t, conversations[0].ID, active)
}
