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
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Wipe(ctx context.Context) error

	Mood(ctx context.Context) error
	Journal(ctx context.Context) error
	Gratitude(ctx context.Context) error
	Meditate(ctx context.Context) error
	Routine(ctx context.Context) error
	List(ctx context.Context, category string) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Export(ctx context.Context) error

	Settings(ctx context.Context) error
	Rename(ctx context.Context) error
	AddRoutine(ctx context.Context) error
	EditRoutine(ctx context.Context) error
	RemoveRoutine(ctx context.Context) error
	AddGoal(ctx context.Context) error
	EditGoal(ctx context.Context) error
	GoalProgress(ctx context.Context) error
	RemoveGoal(ctx context.Context) error
	AddProvider(ctx context.Context) error
	EditProvider(ctx context.Context) error
	RemoveProvider(ctx context.Context) error

	Today(ctx context.Context) error
	Trend(ctx context.Context) error
	Reflect(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, meditate, settings, exit"
	helpLoggedIn  = "Available commands: mood, journal, gratitude, meditate, routine, (l)ist [category], edit, delete, export,\n" +
		"  settings, rename, addroutine, editroutine, rmroutine, addgoal, editgoal, goal, rmgoal,\n" +
		"  addprovider, editprovider, rmprovider,\n" +
		"  today, trend, reflect, whoami, logout, wipe, exit"
)

// runREPL starts a simple read–eval–print loop for the wellkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Command handlers prompt on the same reader,
// so it must not be wrapped in another buffer. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Handler errors are printed and the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wk %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "wipe":
			err = a.Wipe(ctx)

		case "mood":
			err = a.Mood(ctx)
		case "journal":
			err = a.Journal(ctx)
		case "gratitude":
			err = a.Gratitude(ctx)
		case "meditate":
			err = a.Meditate(ctx)
		case "routine":
			err = a.Routine(ctx)
		case "l", "list":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			err = a.List(ctx, category)
		case "edit":
			err = a.Edit(ctx)
		case "delete":
			err = a.Delete(ctx)
		case "export":
			err = a.Export(ctx)

		case "settings":
			err = a.Settings(ctx)
		case "rename":
			err = a.Rename(ctx)
		case "addroutine":
			err = a.AddRoutine(ctx)
		case "editroutine":
			err = a.EditRoutine(ctx)
		case "rmroutine":
			err = a.RemoveRoutine(ctx)
		case "addgoal":
			err = a.AddGoal(ctx)
		case "editgoal":
			err = a.EditGoal(ctx)
		case "goal":
			err = a.GoalProgress(ctx)
		case "rmgoal":
			err = a.RemoveGoal(ctx)
		case "addprovider":
			err = a.AddProvider(ctx)
		case "editprovider":
			err = a.EditProvider(ctx)
		case "rmprovider":
			err = a.RemoveProvider(ctx)

		case "today":
			err = a.Today(ctx)
		case "trend":
			err = a.Trend(ctx)
		case "reflect":
			err = a.Reflect(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
