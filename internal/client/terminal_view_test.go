package client_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"talky/backend/internal/client"
)

func TestTerminalView(t *testing.T) {
	var out bytes.Buffer
	v := client.NewTerminalView(&out)

	v.AddBubble(client.Bubble{ID: "u1", Kind: client.BubbleUser, Text: "hello"})
	v.SetBusy(true)
	assert.True(t, v.Busy())
	v.MarkFailed("u1")
	v.AddBubble(client.Bubble{ID: "e1", Kind: client.BubbleError, Text: "offline"})
	v.SetBusy(false)

	assert.False(t, v.Busy())
	text := out.String()
	assert.Contains(t, text, "hello")
	assert.Contains(t, text, `not sent: "hello"`)
	assert.Contains(t, text, "offline")

	// Unknown ids are ignored.
	before := out.Len()
	v.MarkFailed("missing")
	assert.Equal(t, before, out.Len())
}
