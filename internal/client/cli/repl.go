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
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Incidents(ctx context.Context) error
	ReportIncident(ctx context.Context) error
	Assign(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Team(ctx context.Context) error
	SetStatus(ctx context.Context) error
	Inbox(ctx context.Context) error
	Send(ctx context.Context, args []string) error
	Channel(ctx context.Context, name string) error
	Say(ctx context.Context, args []string) error
	Persons(ctx context.Context) error
	AddPerson(ctx context.Context) error
	Reports(ctx context.Context) error
	AddReport(ctx context.Context) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	SyncStatus()
}

// runREPL starts a simple read–eval–print loop for the Stadtwache CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sw> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: incidents, report, assign <id>, complete <id>, team, setstatus, inbox, send <user-id> <text>, channel [name], say <text>, persons, addperson, reports, addreport, notifications, read <id>, sync, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "incidents":
			_ = a.Incidents(ctx)

		case "report":
			_ = a.ReportIncident(ctx)

		case "assign":
			if len(args) == 0 {
				printlnFn("Usage: assign <id>")
				continue
			}
			_ = a.Assign(ctx, args[0])

		case "complete":
			if len(args) == 0 {
				printlnFn("Usage: complete <id>")
				continue
			}
			_ = a.Complete(ctx, args[0])

		case "team":
			_ = a.Team(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "send":
			if len(args) < 2 {
				printlnFn("Usage: send <user-id> <text>")
				continue
			}
			_ = a.Send(ctx, args)

		case "channel":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			_ = a.Channel(ctx, name)

		case "say":
			if len(args) == 0 {
				printlnFn("Usage: say <text>")
				continue
			}
			_ = a.Say(ctx, args)

		case "persons":
			_ = a.Persons(ctx)

		case "addperson":
			_ = a.AddPerson(ctx)

		case "reports":
			_ = a.Reports(ctx)

		case "addreport":
			_ = a.AddReport(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.MarkRead(ctx, args[0])

		case "sync":
			a.SyncStatus()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
