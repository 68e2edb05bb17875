package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxTurns caps how much history one chat keeps; older turns are dropped.
	MaxTurns = 20
	// ContextWindow is how many recent turns are rendered into a prompt.
	ContextWindow = 6
	// TTL is how long an idle conversation survives before eviction.
	TTL = 2 * time.Hour
)

// Turn is one message of a conversation.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Store owns all mutable conversation state. Implementations serialize the
// read-modify-write of a chat's history internally so two concurrent requests
// for one chat cannot interleave their appends.
type Store interface {
	// Append records a turn and refreshes the conversation's expiry.
	Append(ctx context.Context, chatID, role, content string) error

	// Context renders the last ContextWindow turns for prompt injection.
	// Unknown or empty chat ids yield "".
	Context(ctx context.Context, chatID string) (string, error)

	// ActiveCount reports how many conversations are currently alive.
	ActiveCount(ctx context.Context) (int, error)
}

// renderContext produces the block injected verbatim at the top of a user
// prompt. The core treats it as opaque text; only this package knows its shape.
func renderContext(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	if len(turns) > ContextWindow {
		turns = turns[len(turns)-ContextWindow:]
	}

	var b strings.Builder
	b.WriteString("\n\n--- КОНТЕКСТ РАЗГОВОРА ---\n")
	for _, turn := range turns {
		label := "Ты"
		if turn.Role == "user" {
			label = "Пользователь"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, turn.Content)
	}
	return b.String()
}
