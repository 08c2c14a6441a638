package assistant

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestTemplateResponder(t *testing.T) {
	r := NewTemplateResponder()

	reply, err := r.Respond(context.Background(), "What if we hire 2 more engineers?")
	require.NoError(t, err)

	assert.Contains(t, reply.Content, `Based on your question about "What if we hire 2 more engineers?"`)
	assert.Contains(t, reply.Content, "**Financial Impact:**")
	assert.Contains(t, reply.Content, "**Recommendations:**")

	require.Len(t, reply.KPIDeltas, 2)
	assert.Equal(t, catalog.KPIDelta{Name: "Runway", From: 12.5, To: 10.8}, reply.KPIDeltas[0])
	assert.Equal(t, catalog.KPIDelta{Name: "Monthly Burn", From: 145000, To: 162000}, reply.KPIDeltas[1])

	assert.Equal(t, []string{"Create Scenario from this", "Export as Investor Update"}, reply.Actions)
}

func TestTemplateResponderCancelledContext(t *testing.T) {
	r := NewTemplateResponder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewResponder(t *testing.T) {
	_, err := NewResponder("template")
	require.NoError(t, err)

	_, err = NewResponder("")
	require.NoError(t, err)

	_, err = NewResponder("openai")
	assert.Error(t, err, "real inference providers are not wired")
}

func TestSchedulerDelivers(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	defer s.Shutdown()

	delivered := make(chan struct{})
	require.True(t, s.Schedule("conv-1", func() { close(delivered) }))
	assert.True(t, s.Pending("conv-1"))

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("reply was never delivered")
	}

	assert.Eventually(t, func() bool { return !s.Pending("conv-1") }, time.Second, 5*time.Millisecond)
}

func TestSchedulerRejectsConcurrentSend(t *testing.T) {
	s := NewScheduler(50 * time.Millisecond)
	defer s.Shutdown()

	require.True(t, s.Schedule("conv-1", func() {}))
	assert.False(t, s.Schedule("conv-1", func() {}), "awaiting-reply blocks a second send")
	assert.True(t, s.Schedule("conv-2", func() {}), "other conversations are unaffected")
}

func TestSchedulerCancelDropsDelivery(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)
	defer s.Shutdown()

	var delivered atomic.Bool
	require.True(t, s.Schedule("conv-1", func() { delivered.Store(true) }))
	require.True(t, s.Cancel("conv-1"))
	assert.False(t, s.Pending("conv-1"))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, delivered.Load(), "cancelled replies must not be applied")

	assert.False(t, s.Cancel("conv-1"), "second cancel finds nothing")
}

func TestSchedulerShutdown(t *testing.T) {
	s := NewScheduler(time.Minute)

	var delivered atomic.Bool
	require.True(t, s.Schedule("conv-1", func() { delivered.Store(true) }))

	s.Shutdown()
	assert.False(t, delivered.Load())
	assert.False(t, s.Pending("conv-1"))
}

func TestNewConversation(t *testing.T) {
	c := NewConversation("conv-9", "2024-12-30T10:00:00Z")

	assert.Equal(t, "New Conversation", c.Title)
	assert.Empty(t, c.Messages)
	assert.NotNil(t, c.Messages)
}

func TestRetitleForQuestion(t *testing.T) {
	t.Run("first question titles the conversation", func(t *testing.T) {
		got := RetitleForQuestion("New Conversation", "Should I reduce marketing spend?")
		assert.Equal(t, "Should I reduce marketing spend?...", got)
	})

	t.Run("long questions are truncated to 50 characters", func(t *testing.T) {
		q := "What happens to our runway if I hire two engineers and a product manager next month?"
		got := RetitleForQuestion("New Conversation", q)
		assert.Equal(t, string([]rune(q)[:50])+"...", got)
	})

	t.Run("existing titles are kept", func(t *testing.T) {
		got := RetitleForQuestion("Runway with new hires", "another question")
		assert.Equal(t, "Runway with new hires", got)
	})
}
