package client_test

import (
	"sync"
	"time"

	"talky/backend/internal/client"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// lockedView is a View safe for use from several goroutines.
type lockedView struct {
	mu      sync.Mutex
	bubbles []client.Bubble
}

func (v *lockedView) AddBubble(b client.Bubble) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bubbles = append(v.bubbles, b)
}

func (v *lockedView) MarkFailed(string) {}
func (v *lockedView) SetBusy(bool) {}
