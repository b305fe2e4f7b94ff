package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

func (a *App) prompt() string {
	s := a.store.CurrentSession()
	if s == nil {
		return "portal> "
	}
	return "portal (" + s.Name + " " + s.Role.String() + ")> "
}

// Root reads commands until exit or end of input.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to EduPortal (type 'help' for commands)")

	for {
		a.printf("%s", a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			a.println()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if !a.dispatch(ctx, parts[0]) {
			return
		}
	}
}

// dispatch runs one command and reports whether the shell should continue.
func (a *App) dispatch(ctx context.Context, cmd string) bool {
	var err error

	switch cmd {
	case "help":
		a.help()
	case "register", "signup":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "whoami", "profile":
		a.WhoAmI()
	case "dashboard":
		a.Dashboard()
	case "exit", "quit":
		a.println("Bye!")
		return false
	default:
		a.println("Unknown command:", cmd)
	}

	if err != nil {
		a.println("Error:", err.Error())
	}
	return true
}

func (a *App) help() {
	if a.store.IsAuthenticated() {
		a.println("Available commands: whoami, dashboard, logout, exit")
	} else {
		a.println("Available commands: register, login, exit")
	}
}
