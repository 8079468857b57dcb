package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Accounts(ctx context.Context) error
	Connect(ctx context.Context, args []string) error
	Disconnect(ctx context.Context, args []string) error
	Schedule(ctx context.Context) error
	AddSlot(ctx context.Context, args []string) error
	DelSlot(ctx context.Context, args []string) error
	Compose(ctx context.Context) error
	TwoFA(ctx context.Context, args []string) error
	Notes(ctx context.Context) error
	Dismiss(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, notes, dismiss, exit"
	helpLoggedIn  = "Available commands: whoami, accounts, connect <mastodon|reddit|linkedin>, disconnect <id>, " +
		"schedule, addslot <day> <HH:MM>, delslot <id>, compose, twofa <status|setup|verify|disable>, " +
		"notes, dismiss <id>, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the socialdeck CLI.
//
// It reads a line from in, parses the first token as the
// command and passes the rest as arguments to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits at end of input,
// when ctx is done, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                     show available commands
//	  - register                 create an account
//	  - login                    authenticate (asks for a 2FA code when enabled)
//	  - notes                    list visible notifications
//	  - dismiss <id>             close a notification
//	  - exit | quit              leave the program
//
//	Logged in, additionally:
//	  - whoami                   show the profile and session expiry
//	  - accounts                 list linked accounts
//	  - connect <platform>       link a Mastodon, Reddit or LinkedIn account
//	  - disconnect <id>          unlink an account
//	  - schedule                 show the weekly posting slots
//	  - addslot <day> <HH:MM>    add a slot
//	  - delslot <id>             delete a slot
//	  - compose                  write and publish, queue or schedule a post
//	  - twofa <sub>              two-factor auth: status, setup, verify, disable
//	  - logout                   log out
//
// Commands that need a session are always dispatched; they check the
// session themselves and fall back to the login entry point.
//
// Lines are read from the same reader the prompts use, so piped input
// reaches both.
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors as notifications. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("socialdeck %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "accounts":
			_ = a.Accounts(ctx)

		case "connect":
			_ = a.Connect(ctx, args)

		case "disconnect":
			_ = a.Disconnect(ctx, args)

		case "schedule":
			_ = a.Schedule(ctx)

		case "addslot":
			_ = a.AddSlot(ctx, args)

		case "delslot":
			_ = a.DelSlot(ctx, args)

		case "compose":
			_ = a.Compose(ctx)

		case "twofa", "2fa":
			_ = a.TwoFA(ctx, args)

		case "notes":
			_ = a.Notes(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
