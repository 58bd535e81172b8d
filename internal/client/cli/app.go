package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/presskit/internal/client/client"
	"github.com/dmitrijs2005/presskit/internal/client/config"
	"github.com/dmitrijs2005/presskit/internal/client/services"
)

type App struct {
	config *config.Config
	client client.Client
	auth   *services.AuthService
	repos  *client.Repositories
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	repos, err := client.InitDatabase(ctx, c.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	apiClient, err := client.NewPressKitClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	app := newApp(c, apiClient, services.NewAuthService(apiClient, repos.Session), os.Stdin, os.Stdout)
	app.repos = repos
	return app, nil
}

func newApp(c *config.Config, cl client.Client, auth *services.AuthService, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, auth: auth, reader: bufio.NewReader(in), out: out}
}

// Run restores the previous session and serves commands until exit.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "PressKit CLI (type 'help' for commands)")
	if s, err := a.auth.Restore(ctx); err != nil {
		a.report(ctx, err)
	} else if s != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", s.Email)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		fmt.Fprintln(a.out, "error closing connection:", err)
	}
	if a.repos != nil {
		if err := a.repos.Close(); err != nil {
			fmt.Fprintln(a.out, "error closing session database:", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	_, err := a.auth.Current()
	return err == nil
}

func (a *App) status() string {
	if s, err := a.auth.Current(); err == nil {
		return "(" + s.Email + ") "
	}
	return ""
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// report prints err for the user. A rejected token ends the local session.
func (a *App) report(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn():
		_ = a.auth.Logout(ctx)
		fmt.Fprintln(a.out, "Session expired, please log in again")
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please log in first")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

// requireLogin reports ErrNotLoggedIn when there is no session.
func (a *App) requireLogin(ctx context.Context) error {
	if _, err := a.auth.Current(); err != nil {
		return a.report(ctx, err)
	}
	return nil
}
