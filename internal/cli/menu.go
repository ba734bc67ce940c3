package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the menu loop needs to
// operate. The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddTask(ctx context.Context) error
	ListTasks(ctx context.Context) error
	UpdateTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	ToggleTask(ctx context.Context) error
}

func printMenu(a execIface) {
	printlnFn("")
	printlnFn("=== Cloud To-Do ===", a.status())
	printlnFn("1) Register")
	printlnFn("2) Login")
	printlnFn("3) Add Task")
	printlnFn("4) List Tasks")
	printlnFn("5) Update Task")
	printlnFn("6) Delete Task")
	printlnFn("7) Toggle Complete")
	printlnFn("8) Exit")
	printlnFn("9) Logout")
}

// requireLogin gates task commands; options 3-7 and 9 only make sense with a
// live session.
func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please login first.")
	return false
}

// runMenu starts the numeric menu loop for the Cloud To-Do CLI.
//
// It prints the menu, reads a choice from the provided scanner and dispatches
// to methods on 'a'. The loop exits on scanner EOF or when the user picks
// option 8 (or types "exit"/"quit").
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runMenu(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printMenu(a)
		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == "" {
			continue
		}

		switch choice {
		case "1":
			_ = a.Register(ctx)

		case "2":
			_ = a.Login(ctx)

		case "3":
			if requireLogin(a) {
				_ = a.AddTask(ctx)
			}

		case "4":
			if requireLogin(a) {
				_ = a.ListTasks(ctx)
			}

		case "5":
			if requireLogin(a) {
				_ = a.UpdateTask(ctx)
			}

		case "6":
			if requireLogin(a) {
				_ = a.DeleteTask(ctx)
			}

		case "7":
			if requireLogin(a) {
				_ = a.ToggleTask(ctx)
			}

		case "8", "exit", "quit":
			printlnFn("Goodbye!")
			return

		case "9":
			if requireLogin(a) {
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Invalid choice:", choice)
		}
	}
}
