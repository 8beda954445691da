package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/client/client"
)

func (a *App) printTurn(res *client.TurnResult) {
	if res.SessionCreated {
		log.Printf("Started session %q", res.Session)
	}
	a.currentSession = res.Session

	fmt.Printf("[%s]\n%s\n", res.Reply.Role, res.Reply.Content)

	if res.Annotation != nil {
		if res.Annotation.RiskScore != nil {
			fmt.Println(renderMeter(*res.Annotation.RiskScore))
		}
		if res.Annotation.Summary != "" {
			fmt.Println("Privacy Recommendations:")
			fmt.Println(res.Annotation.Summary)
		}
	}
}

// Chat sends one message in the current session. With no session open the
// server starts a new one named after the message.
func (a *App) Chat(ctx context.Context) error {
	message, err := GetMultiline(a.reader, "Enter your message", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if message == "" {
		fmt.Println("Empty message, nothing sent")
		return nil
	}

	res, err := a.api.Chat(ctx, a.currentSession, message)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.printTurn(res)
	return nil
}

// Screenshot uploads an image file for analysis.
func (a *App) Screenshot(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Enter path to the screenshot file", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	res, err := a.api.UploadScreenshot(ctx, a.currentSession, filepath.Base(path), data)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.printTurn(res)
	return nil
}
