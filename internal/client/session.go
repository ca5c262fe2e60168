package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"talky/backend/internal/model"
)

// ErrBusy is returned by Send while a previous message is still in flight.
var ErrBusy = errors.New("a message is already being sent")

// State is the send-loop state.
type State int

const (
	StateIdle State = iota
	StateAwaiting
)

func (s State) String() string {
	if s == StateAwaiting {
		return "awaiting-response"
	}
	return "idle"
}

// BubbleKind tells a View how to render a transcript entry.
type BubbleKind int

const (
	BubbleUser BubbleKind = iota
	BubbleAssistant
	BubbleError
)

// Bubble is one rendered transcript entry.
type Bubble struct {
	ID   string
	Kind BubbleKind
	Text string
}

// View renders the transcript and the busy indicator. SetBusy(true) disables
// input and shows a typing indicator; SetBusy(false) reverses both.
type View interface {
	AddBubble(b Bubble)
	MarkFailed(bubbleID string)
	SetBusy(busy bool)
}

// Transport sends a conversation to the relay.
type Transport interface {
	Chat(ctx context.Context, history []model.ChatTurn, modelID string) (*model.ChatResponse, error)
}

// Session owns one conversation: its history, its send state, and the view it
// renders into. A failed send removes the user turn from the history but
// keeps its bubble, marked as failed.
type Session struct {
	transport Transport
	view      View
	modelID   string

	mu      sync.Mutex
	history []model.ChatTurn
	state   State
}

func NewSession(transport Transport, view View, modelID string) *Session {
	return &Session{transport: transport, view: view, modelID: modelID}
}

// History returns a copy of the logical conversation history.
func (s *Session) History() []model.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatTurn(nil), s.history...)
}

// State returns the current send-loop state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send submits text as a new user turn and waits for the reply. Blank text is
// ignored. The returned error is the transport error, if any; it has already
// been rendered as an error bubble.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.state == StateAwaiting {
		s.mu.Unlock()
		return ErrBusy
	}
	bubbleID := uuid.NewString()
	s.history = append(s.history, model.ChatTurn{Role: model.RoleUser, Content: text})
	outgoing := append([]model.ChatTurn(nil), s.history...)
	s.state = StateAwaiting
	s.mu.Unlock()

	s.view.AddBubble(Bubble{ID: bubbleID, Kind: BubbleUser, Text: text})
	s.view.SetBusy(true)
	defer func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		s.view.SetBusy(false)
	}()

	resp, err := s.transport.Chat(ctx, outgoing, s.modelID)
	if err != nil {
		s.mu.Lock()
		s.history = s.history[:len(s.history)-1]
		s.mu.Unlock()

		s.view.MarkFailed(bubbleID)
		s.view.AddBubble(Bubble{ID: uuid.NewString(), Kind: BubbleError, Text: FriendlyError(err)})
		return err
	}

	s.mu.Lock()
	s.history = append(s.history, model.ChatTurn{Role: model.RoleAssistant, Content: resp.Response})
	s.mu.Unlock()

	s.view.AddBubble(Bubble{ID: uuid.NewString(), Kind: BubbleAssistant, Text: resp.Response})
	return nil
}

// FriendlyError turns a transport error into the text shown to the user.
func FriendlyError(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Cannot connect to backend server at %s. Start it with `go run ./cmd/server` and try again.", netErr.BaseURL)
	}

	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		if strings.Contains(strings.ToLower(srvErr.Message), "api key") {
			return "API key not configured. Please add your API key to the backend .env file."
		}
		return srvErr.Message
	}
	return err.Error()
}
