package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	userStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// TerminalView renders a Session to a terminal. Bubbles are printed as they
// arrive, so marking one failed prints a note rather than restyling it.
type TerminalView struct {
	mu   sync.Mutex
	out  io.Writer
	busy bool
	// texts remembers user bubbles so a failure note can quote them.
	texts map[string]string
}

func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out, texts: make(map[string]string)}
}

func (v *TerminalView) AddBubble(b Bubble) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch b.Kind {
	case BubbleUser:
		v.texts[b.ID] = b.Text
		fmt.Fprintf(v.out, "%s %s\n", userStyle.Render("you ›"), b.Text)
	case BubbleAssistant:
		fmt.Fprintf(v.out, "%s %s\n", assistantStyle.Render("bot ›"), b.Text)
	case BubbleError:
		fmt.Fprintf(v.out, "%s\n", errorStyle.Render("✗ "+b.Text))
	}
}

func (v *TerminalView) MarkFailed(bubbleID string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	text, ok := v.texts[bubbleID]
	if !ok {
		return
	}
	delete(v.texts, bubbleID)
	fmt.Fprintf(v.out, "%s\n", mutedStyle.Render(fmt.Sprintf("  not sent: %q", text)))
}

func (v *TerminalView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if busy && !v.busy {
		fmt.Fprintln(v.out, mutedStyle.Render("  typing…"))
	}
	v.busy = busy
}

// Busy reports whether input is currently disabled.
func (v *TerminalView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}
