package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const (
	msgAlreadyLoggedIn = "Already logged in, logout first"
	msgNotLoggedIn     = "Not logged in"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Stories(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the snoozer client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                 show available commands
//	  - signup | register    create an account
//	  - login                authenticate
//	  - stories | l          list stories
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - help                 show available commands
//	  - stories | l          list stories, favorites marked with '*'
//	  - profile              show the user profile
//	  - logout               log out and forget the stored session
//	  - exit | quit          leave the program
//
// Commands not listed for the current state are refused with a message.
//
// Errors returned by command handlers are ignored here; the handlers have
// already reported them through the view.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("snz %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: stories (l), profile, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, stories (l), exit")
			}

		case "signup", "register":
			if a.isLoggedIn() {
				printlnFn(msgAlreadyLoggedIn)
				continue
			}
			_ = a.Signup(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn(msgAlreadyLoggedIn)
				continue
			}
			_ = a.Login(ctx)

		case "l", "stories":
			_ = a.Stories(ctx)

		case "profile":
			if !a.isLoggedIn() {
				printlnFn(msgNotLoggedIn)
				continue
			}
			_ = a.Profile(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn(msgNotLoggedIn)
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
