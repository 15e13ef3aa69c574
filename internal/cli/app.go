package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	pulse "github.com/pulsesocial/pulse-go"
	"github.com/pulsesocial/pulse-go/credstore"
	"github.com/pulsesocial/pulse-go/internal/cli/config"
)

// App is the interactive pulse client: a small REPL over the SDK.
type App struct {
	cfg     *config.Config
	store   *credstore.SQLite
	session *pulse.Session
	client  *pulse.Client
	reader  *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

// NewApp opens the credential store, builds the session, and restores any
// persisted login.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	store, err := credstore.OpenSQLite(ctx, cfg.CredentialDB)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	session, err := pulse.NewSession(store, pulse.Config{
		BaseURL:   cfg.BaseURL,
		Telemetry: telemetryHooks(logger),
		UserAgent: "pulse-cli/" + pulse.Version,
	})
	if err != nil {
		store.Close()
		return nil, err
	}

	app := &App{
		cfg:     cfg,
		store:   store,
		session: session,
		client:  session.Client(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		logger:  logger,
	}

	session.Subscribe(func(state pulse.SessionState) {
		logger.Debug().Str("state", string(state)).Msg("session state changed")
	})
	if err := session.Initialize(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return app, nil
}

// Run reads commands until quit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.printWelcome()
	for {
		line, err := promptLine(a.reader, a.prompt(), a.out)
		if err != nil {
			fmt.Fprintln(a.out)
			return
		}
		if line == "" {
			continue
		}
		if !a.dispatch(ctx, line) {
			return
		}
	}
}

func (a *App) prompt() string {
	if u := a.session.User(); u != nil {
		return "pulse:" + u.Username + "> "
	}
	return "pulse> "
}

func (a *App) printWelcome() {
	fmt.Fprintf(a.out, "pulse %s (%s)\n", pulse.Version, a.cfg.BaseURL)
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "logged in as @%s\n", u.Username)
	} else {
		fmt.Fprintln(a.out, "not logged in; try 'login' or 'register'")
	}
	fmt.Fprintln(a.out, "type 'help' for commands")
}
