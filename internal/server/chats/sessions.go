// Package chats implements the in-memory operations on a user's session
// map. The operations mutate the map only; persisting the result is the
// caller's job, so several mutations can be combined into a single save.
package chats

import (
	"fmt"
	"sort"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

// maxDerivedNameLen is how much of the first message survives into a
// derived session name before the ellipsis is added.
const maxDerivedNameLen = 20

// Create inserts an empty session under name.
func Create(sessions models.SessionMap, name string) error {
	if _, ok := sessions[name]; ok {
		return fmt.Errorf("session %q: %w", name, common.ErrorAlreadyExists)
	}
	sessions[name] = []models.Message{}
	return nil
}

// Rename moves the transcript from oldName to newName, preserving message
// order. Renaming a session to its own name is a no-op.
func Rename(sessions models.SessionMap, oldName, newName string) error {
	msgs, ok := sessions[oldName]
	if !ok {
		return fmt.Errorf("session %q: %w", oldName, common.ErrorNotFound)
	}
	if newName == oldName {
		return nil
	}
	if _, ok := sessions[newName]; ok {
		return fmt.Errorf("session %q: %w", newName, common.ErrorAlreadyExists)
	}

	sessions[newName] = msgs
	delete(sessions, oldName)
	return nil
}

// Delete removes the session and its transcript.
func Delete(sessions models.SessionMap, name string) error {
	if _, ok := sessions[name]; !ok {
		return fmt.Errorf("session %q: %w", name, common.ErrorNotFound)
	}
	delete(sessions, name)
	return nil
}

// Append adds a message to the end of the session's transcript.
func Append(sessions models.SessionMap, name string, msg models.Message) error {
	msgs, ok := sessions[name]
	if !ok {
		return fmt.Errorf("session %q: %w", name, common.ErrorNotFound)
	}
	sessions[name] = append(msgs, msg)
	return nil
}

// Names returns the session names sorted alphabetically. Go maps have no
// stable iteration order, so listings sort for a predictable sidebar.
func Names(sessions models.SessionMap) []string {
	names := make([]string, 0, len(sessions))
	for name := range sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeriveName builds a session name from the first user input: the first 20
// characters plus an ellipsis when the input is longer.
func DeriveName(input string) string {
	runes := []rune(input)
	if len(runes) > maxDerivedNameLen {
		return string(runes[:maxDerivedNameLen]) + "..."
	}
	return input
}
