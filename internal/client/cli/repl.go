package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Profile(ctx context.Context) error
	Reservations(ctx context.Context) error
	NewReservation(ctx context.Context) error
	EditReservation(ctx context.Context, id int64) error
	DeleteReservation(ctx context.Context, id int64) error
	Back(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the reservation CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is cancelled, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help              show available commands
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - help              show available commands
//	  - home              go to the home screen
//	  - (l)ist            list reservations (alias: reservations)
//	  - new               create a reservation
//	  - edit <id>         edit a reservation
//	  - delete <id>       delete a reservation
//	  - profile           show and edit the profile
//	  - back              previous screen
//	  - logout            log out
//	  - exit | quit       leave the program
//
// Errors returned by command handlers are ignored here; handlers alert and
// log their own errors, keeping the loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("reservas (%s) > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, (l)ist, new, edit <id>, delete <id>, profile, back, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "l", "list", "reservations":
			_ = a.Reservations(ctx)

		case "new":
			_ = a.NewReservation(ctx)

		case "edit", "delete":
			id, ok := idArg(args)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			if cmd == "edit" {
				_ = a.EditReservation(ctx, id)
			} else {
				_ = a.DeleteReservation(ctx, id)
			}

		case "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func idArg(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
