package blackjack

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is a single human-readable table notification
type Message struct {
	UUID    string    `json:"uuid"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func newMessage(format string, a ...interface{}) *Message {
	return &Message{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

func (g *Game) logMessage(format string, a ...interface{}) {
	g.messages = append(g.messages, newMessage(format, a...))
}

// Drain returns the accumulated messages and clears the sink.
// Must only be called from the goroutine that owns the game.
func (g *Game) Drain() []*Message {
	m := g.messages
	g.messages = nil

	return m
}
