// Package cli is the interactive command-line surface of fdatrack. It wires
// the session service, the API client, and the local repositories together
// and runs a small REPL over them.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/fdatrack/fdatrack/internal/client/api"
	"github.com/fdatrack/fdatrack/internal/client/archive"
	"github.com/fdatrack/fdatrack/internal/client/captcha"
	"github.com/fdatrack/fdatrack/internal/client/config"
	"github.com/fdatrack/fdatrack/internal/client/repositories/watchlist"
	"github.com/fdatrack/fdatrack/internal/client/session"
	"github.com/fdatrack/fdatrack/internal/client/storage"
	"github.com/fdatrack/fdatrack/internal/logging"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	session   *session.Service
	client    *api.Client
	watchlist watchlist.Repository
	uploader  *archive.Uploader
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the local database and wires every component. The API
// client's auth-failure listener is bound to the session service's Logout,
// so a backend 401 lands the user back at the anonymous prompt.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db)

	client, err := api.New(c.BaseURL, store, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)

	var challenge captcha.Provider
	if c.CaptchaSecret != "" {
		challenge = captcha.NewStaticProvider(c.CaptchaSecret)
	} else {
		challenge = captcha.NewPromptProvider(reader, os.Stdout)
	}

	svc := session.NewService(store, client, challenge, c.ChallengeTimeout, log)
	client.SetAuthFailureListener(func() {
		_ = svc.Logout(context.Background())
		printlnFn("Session expired, please log in again.")
	})

	uploader := archive.NewUploader(archive.Options{
		Bucket:    c.S3Bucket,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	}, log)

	return &App{
		config:    c,
		db:        db,
		session:   svc,
		client:    client,
		watchlist: watchlist.NewSQLiteRepository(db),
		uploader:  uploader,
		log:       log.With("component", "cli"),
		reader:    reader,
		out:       os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	a.Root(ctx)
	return nil
}
