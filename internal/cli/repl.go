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
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Clone(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	GenPass(ctx context.Context) error
	Prefs(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PAM client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	(l)ist            — list records (respecting the current search)
//	show <title>      — show one record with display-formatted fields
//	(s)earch [regex]  — filter records; no argument repeats the last search
//	add               — create a record interactively
//	edit <title>      — edit a record
//	clone <title>     — duplicate a record
//	delete <title>    — delete a record
//	clear             — delete all records
//	load              — load a snapshot from file, URL or clipboard
//	save              — save a snapshot to file or clipboard
//	genpass           — generate passwords
//	prefs             — show the current preferences
//	exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pam %s > ", statusFn()))
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
			printlnFn("Available commands: (l)ist, show, (s)earch, add, edit, clone, delete, clear, load, save, genpass, prefs, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "s", "search":
			_ = a.Search(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "clone":
			_ = a.Clone(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "clear":
			_ = a.Clear(ctx)

		case "load":
			_ = a.Load(ctx)

		case "save":
			_ = a.Save(ctx)

		case "genpass":
			_ = a.GenPass(ctx)

		case "prefs":
			_ = a.Prefs(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
