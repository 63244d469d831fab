package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// App is the terminal front-end. It owns navigation and the current
// user; all persistence goes through the Store.
type App struct {
	store *Store
	cfg   Config
	in    *bufio.Scanner
	out   io.Writer
	user  *User
}

func NewApp(store *Store, cfg Config, in io.Reader, out io.Writer) *App {
	return &App{
		store: store,
		cfg:   cfg,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops between the login screen and the dashboard until the user
// quits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== Quiz Desk ===")
	for {
		var quit bool
		var err error
		if a.user == nil {
			quit, err = a.loginScreen(ctx)
		} else {
			quit, err = a.dashboardScreen(ctx)
		}
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

// readLine returns the next input line. ok is false once stdin is
// closed, which quits the app cleanly.
func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	return a.readLine()
}

func (a *App) promptUint(label string) (uint, bool) {
	for {
		text, ok := a.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(text, 10, 32)
		if err == nil {
			return uint(n), true
		}
		fmt.Fprintln(a.out, "Please enter a number.")
	}
}

// fail reports a store error to the user and keeps the session alive.
func (a *App) fail(err error) {
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
