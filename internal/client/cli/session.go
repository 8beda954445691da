package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) List(ctx context.Context) error {
	names, err := a.api.ListSessions(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(names) == 0 {
		fmt.Println("No chat sessions yet")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// Open switches the current session to an existing one.
func (a *App) Open(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter session name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if _, err := a.api.GetTranscript(ctx, name); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.currentSession = name
	log.Printf("Opened session %q", name)
	return nil
}

func (a *App) New(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter new session name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.CreateSession(ctx, name); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.currentSession = name
	log.Printf("Created session %q", name)
	return nil
}

func (a *App) Rename(ctx context.Context) error {
	oldName, err := GetSimpleText(a.reader, "Enter session name to rename", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	newName, err := GetSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.RenameSession(ctx, oldName, newName); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if a.currentSession == oldName {
		a.currentSession = newName
	}
	log.Printf("Renamed %q to %q", oldName, newName)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter session name to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.DeleteSession(ctx, name); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if a.currentSession == name {
		a.currentSession = ""
	}
	log.Printf("Deleted session %q", name)
	return nil
}

// Show prints the transcript of the current session, with the risk meter
// under every annotated assistant reply.
func (a *App) Show(ctx context.Context) error {
	if a.currentSession == "" {
		fmt.Println("No session open, use 'open' or 'new' first")
		return nil
	}

	messages, err := a.api.GetTranscript(ctx, a.currentSession)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, m := range messages {
		fmt.Printf("[%s]\n%s\n", m.Role, m.Content)
		if m.Annotation != nil && m.Annotation.RiskScore != nil {
			fmt.Println(renderMeter(*m.Annotation.RiskScore))
		}
		fmt.Println()
	}
	return nil
}
