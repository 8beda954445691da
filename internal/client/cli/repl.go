package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context) error
	New(ctx context.Context) error
	Rename(ctx context.Context) error
	Delete(ctx context.Context) error
	Show(ctx context.Context) error
	Chat(ctx context.Context) error
	Screenshot(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the AI PrivacyCheck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - chat           — send a message in the current session
//	  - screenshot     — upload a screenshot for analysis
//	  - list           — list chat sessions
//	  - open           — open an existing session
//	  - new            — create a session
//	  - rename         — rename a session
//	  - delete         — delete a session
//	  - show           — print the current session transcript
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (c)hat, screenshot, (l)ist, open, new, rename, delete, show, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "c", "chat":
			_ = a.Chat(ctx)

		case "screenshot":
			_ = a.Screenshot(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "open":
			_ = a.Open(ctx)

		case "new":
			_ = a.New(ctx)

		case "rename":
			_ = a.Rename(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "show":
			_ = a.Show(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
