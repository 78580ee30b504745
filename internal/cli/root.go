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
	currentName(ctx context.Context) string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Play(ctx context.Context, game string) error
	Best(ctx context.Context) error
	Users(ctx context.Context) error
	ToggleRole(ctx context.Context, email string) error
	DeleteUser(ctx context.Context, email string) error
}

// runREPL starts a read–eval–print loop for the GameBox portal.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on reader EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Guest:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - reset           — reset a password with the recovery phrase
//	  - exit | quit     — leave the program
//
//	Logged in (additionally):
//	  - whoami          — show the current account
//	  - play <game>     — play a mini-game
//	  - best            — show personal bests
//	  - users           — list accounts (admin)
//	  - role <email>    — toggle a user's role (admin)
//	  - deluser <email> — delete an account (admin)
//	  - logout          — log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		status := a.currentName(ctx)
		if status == "" {
			status = "guest"
		}
		printlnFn(fmt.Sprintf("gb (%s)> ", status))

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.currentName(ctx) != "" {
				printlnFn("Available commands: whoami, play <game>, best, users, role <email>, deluser <email>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "play":
			if len(args) == 0 {
				printlnFn("Usage: play <game>")
				continue
			}
			_ = a.Play(ctx, args[0])

		case "best":
			_ = a.Best(ctx)

		case "users":
			_ = a.Users(ctx)

		case "role":
			if len(args) == 0 {
				printlnFn("Usage: role <email>")
				continue
			}
			_ = a.ToggleRole(ctx, args[0])

		case "deluser":
			if len(args) == 0 {
				printlnFn("Usage: deluser <email>")
				continue
			}
			_ = a.DeleteUser(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root runs the REPL against the process stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to GameBox (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}
