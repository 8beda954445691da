// Package models holds the data types shared by the server services and
// repositories.
package models

// Role tags a message with its author side.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. Messages are immutable once
// appended; ordering within a session is insertion order.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionMap maps a session name to its ordered transcript. This is also
// the on-disk shape of a user's session file.
type SessionMap map[string][]Message
