package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/services"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dmitrijs2005/tutorias/internal/logging"
)

type App struct {
	auth        services.AuthService
	api         *api.API
	downloadDir string
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	role     session.Role
	loggedIn bool
}

func NewApp(auth services.AuthService, a *api.API, downloadDir string, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop{}
	}
	return &App{
		auth:        auth,
		api:         a,
		downloadDir: downloadDir,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

// Navigate implements client.Navigator. The session store is already empty
// when it is called.
func (a *App) Navigate(ctx context.Context, route string) {
	a.loggedIn = false
	a.role = ""

	hint := "login"
	switch route {
	case session.RouteStudentLogin:
		hint = "login alumno"
	case session.RouteTutorLogin:
		hint = "login tutor"
	case session.RouteAdminLogin:
		hint = "login admin"
	}
	fmt.Fprintf(a.out, "Session expired (%s). Use '%s' to sign in again.\n", route, hint)
}

// Run restores a stored session and starts the REPL on stdin.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)
	fmt.Fprintln(a.out, "Tutorias CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) restore(ctx context.Context) {
	id, err := a.auth.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not read stored session", "error", err)
		return
	}
	a.loggedIn, a.role = id.Authenticated, id.Role
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	if !a.loggedIn {
		return ""
	}
	if a.role == "" {
		return "(signed in)"
	}
	return fmt.Sprintf("(%s)", a.role)
}

func (a *App) requireLogin() error {
	if !a.loggedIn {
		return errNotLoggedIn
	}
	return nil
}

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

// describe turns an error into a line for the user.
func describe(err error) string {
	var failure *client.Failure
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, client.ErrForbidden):
		return "Not allowed for your role"
	case errors.As(err, &failure) && failure.StatusCode != 0:
		if failure.Detail != "" {
			return failure.Detail
		}
		return fmt.Sprintf("Request failed with status %d", failure.StatusCode)
	}
	return err.Error()
}
