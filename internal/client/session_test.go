package client_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talky/backend/internal/client"
	"talky/backend/internal/model"
)

type recordingView struct {
	bubbles   []client.Bubble
	failed    []string
	busyCalls []bool
}

func (v *recordingView) AddBubble(b client.Bubble) { v.bubbles = append(v.bubbles, b) }
func (v *recordingView) MarkFailed(id string) { v.failed = append(v.failed, id) }
func (v *recordingView) SetBusy(busy bool) { v.busyCalls = append(v.busyCalls, busy) }
func (v *recordingView) busy() bool { return len(v.busyCalls) > 0 && v.busyCalls[len(v.busyCalls)-1] }

type scriptedTransport struct {
	replies []string
	errs    []error
	calls   [][]model.ChatTurn
	block   chan struct{}
}

func (s *scriptedTransport) Chat(_ context.Context, history []model.ChatTurn, _ string) (*model.ChatResponse, error) {
	if s.block != nil {
		<-s.block
	}
	i := len(s.calls)
	s.calls = append(s.calls, history)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return &model.ChatResponse{Response: s.replies[i], Model: "gemini"}, nil
}

func TestSession_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Success appends both turns", func(t *testing.T) {
		view := &recordingView{}
		transport := &scriptedTransport{replies: []string{"hi there"}}
		s := client.NewSession(transport, view, "")

		require.NoError(t, s.Send(ctx, "  hello  "))

		assert.Equal(t, []model.ChatTurn{
			{Role: "user", Content: "hello"},
			{Role: "assistant", Content: "hi there"},
		}, s.History())
		require.Len(t, view.bubbles, 2)
		assert.Equal(t, client.BubbleUser, view.bubbles[0].Kind)
		assert.Equal(t, client.BubbleAssistant, view.bubbles[1].Kind)
		assert.Equal(t, []bool{true, false}, view.busyCalls)
		assert.Equal(t, client.StateIdle, s.State())
	})

	t.Run("Blank text is ignored", func(t *testing.T) {
		view := &recordingView{}
		transport := &scriptedTransport{}
		s := client.NewSession(transport, view, "")

		require.NoError(t, s.Send(ctx, "   "))

		assert.Empty(t, transport.calls)
		assert.Empty(t, view.bubbles)
	})

	// A network failure must drop the user turn from the next request, keep
	// the bubble marked as failed, and re-enable input.
	t.Run("Network failure rolls back the turn", func(t *testing.T) {
		view := &recordingView{}
		netErr := &client.NetworkError{BaseURL: client.DefaultBaseURL, Err: errors.New("connection refused")}
		transport := &scriptedTransport{replies: []string{"", "second reply"}, errs: []error{netErr}}
		s := client.NewSession(transport, view, "")

		err := s.Send(ctx, "first")
		require.Error(t, err)

		assert.Empty(t, s.History())
		assert.False(t, view.busy())
		assert.Equal(t, client.StateIdle, s.State())
		require.Len(t, view.failed, 1)
		assert.Equal(t, view.bubbles[0].ID, view.failed[0])
		require.Len(t, view.bubbles, 2)
		assert.Equal(t, client.BubbleError, view.bubbles[1].Kind)
		assert.Contains(t, view.bubbles[1].Text, "Cannot connect to backend server at http://localhost:5000")

		require.NoError(t, s.Send(ctx, "second"))
		require.Len(t, transport.calls, 2)
		assert.Equal(t, []model.ChatTurn{{Role: "user", Content: "second"}}, transport.calls[1])
	})

	t.Run("Send while awaiting returns ErrBusy", func(t *testing.T) {
		transport := &scriptedTransport{replies: []string{"done"}, block: make(chan struct{})}
		s := client.NewSession(transport, &lockedView{}, "")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Send(ctx, "first"))
		}()

		require.Eventually(t, func() bool { return s.State() == client.StateAwaiting }, timeout, tick)
		assert.ErrorIs(t, s.Send(ctx, "second"), client.ErrBusy)

		close(transport.block)
		wg.Wait()
		assert.Len(t, s.History(), 2)
	})
}

func TestFriendlyError(t *testing.T) {
	assert.Equal(t, "API key not configured. Please add your API key to the backend .env file.",
		client.FriendlyError(&client.ServerError{Status: 500, Message: "Incorrect API key provided"}))
	assert.Equal(t, "API configuration error. Please check backend .env file.",
		client.FriendlyError(&client.ServerError{Status: 500, Message: "API configuration error. Please check backend .env file."}))
	assert.Equal(t, "boom", client.FriendlyError(errors.New("boom")))
}
