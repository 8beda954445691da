package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/client/client"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/client/config"
)

// App is the interactive CLI for AI PrivacyCheck. It keeps the logged-in
// username and the currently open chat session between commands.
type App struct {
	config         *config.Config
	api            *client.Client
	userName       string
	currentSession string
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.New(c.ServerEndpointAddr)
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName
	}
	if a.currentSession != "" {
		s = s + " / " + a.currentSession
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
