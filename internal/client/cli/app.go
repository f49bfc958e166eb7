// Package cli implements the interactive RELEVÉ terminal client: a small
// REPL over the session manager and the remote API.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/releve-app/releve/internal/client/api"
	"github.com/releve-app/releve/internal/client/config"
	"github.com/releve-app/releve/internal/client/credstore"
	"github.com/releve-app/releve/internal/client/session"
	"github.com/releve-app/releve/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	store   *credstore.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the client together: credential store, API client and session
// manager. The app itself is the API client's token provider, delegating to
// the session manager.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := credstore.Open(ctx, cfg.CredentialDB)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.api = api.NewHTTPClient(cfg.BaseURL, a, api.WithTimeout(cfg.RequestTimeout))
	a.session = session.NewManager(a.api, store, log)
	return a, nil
}

// AccessToken satisfies api.TokenProvider.
func (a *App) AccessToken() string {
	if a.session == nil {
		return ""
	}
	return a.session.AccessToken()
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// status renders the prompt suffix, e.g. "(a@b.com)".
func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

// Run hydrates the session and serves the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Hydrate(ctx)
	if u := a.session.User(); u != nil {
		a.log.Info(ctx, "session restored", "user", u.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

// Close waits for pending credential writes and releases the store.
func (a *App) Close() {
	a.session.Wait()
	_ = a.store.Close()
}
