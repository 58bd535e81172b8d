package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	RequestVerification(ctx context.Context) error
	ConfirmVerification(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, token string) error
	ListKits(ctx context.Context) error
	CreateKit(ctx context.Context, title string) error
	ShowKit(ctx context.Context, id string) error
	PublishKit(ctx context.Context, id string) error
	UnpublishKit(ctx context.Context, id string) error
	DeleteKit(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id, path string) error
	ViewPublished(ctx context.Context, slug string) error
}

// usage maps commands that need arguments to their usage line.
var usage = map[string]string{
	"confirm":   "Usage: confirm <token>",
	"reset":     "Usage: reset <token>",
	"show":      "Usage: show <id>",
	"publish":   "Usage: publish <id>",
	"unpublish": "Usage: unpublish <id>",
	"delete":    "Usage: delete <id>",
	"logo":      "Usage: logo <id> <file>",
	"view":      "Usage: view <slug>",
}

var minArgs = map[string]int{
	"confirm": 1, "reset": 1, "show": 1, "publish": 1, "unpublish": 1, "delete": 1, "logo": 2, "view": 1,
}

// runREPL reads one command per line and dispatches it. Handlers report
// their own errors; the loop only ends on EOF or exit/quit. Commands that
// prompt read from the same reader, so piped input stays in order.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "presskit %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if n, ok := minArgs[cmd]; ok && len(args) < n {
			fmt.Fprintln(w, usage[cmd])
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, verify, confirm, kits, create, show, publish, unpublish, delete, logo, view, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, forgot, reset, confirm, view, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "verify":
			_ = a.RequestVerification(ctx)
		case "confirm":
			_ = a.ConfirmVerification(ctx, args[0])
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			_ = a.ResetPassword(ctx, args[0])
		case "kits", "list":
			_ = a.ListKits(ctx)
		case "create":
			_ = a.CreateKit(ctx, strings.Join(args, " "))
		case "show":
			_ = a.ShowKit(ctx, args[0])
		case "publish":
			_ = a.PublishKit(ctx, args[0])
		case "unpublish":
			_ = a.UnpublishKit(ctx, args[0])
		case "delete":
			_ = a.DeleteKit(ctx, args[0])
		case "logo":
			_ = a.UploadLogo(ctx, args[0], args[1])
		case "view":
			_ = a.ViewPublished(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
