// Package cli is the recipebook terminal client. It drives either the local
// service set over a SQLite file or a remote API server.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/recipebook/recipe-book/internal/app"
	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/infrastructure/config"
	"github.com/recipebook/recipe-book/internal/infrastructure/store"
	"github.com/recipebook/recipe-book/pkg/logger"
)

// runtime is what every command works against once the root pre-run hook
// has opened the store.
type runtime struct {
	dbPath   string
	apiURL   string
	logLevel string

	svc   *app.Services
	close app.Closer
}

// session returns the active session, or nil when logged out.
func (rt *runtime) session(ctx context.Context) (*domain.Session, error) {
	return rt.svc.Auth.CurrentSession(ctx)
}

// requireSession is session but fails when logged out.
func (rt *runtime) requireSession(ctx context.Context) (*domain.Session, error) {
	sess, err := rt.session(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: run `recipebook login` first", domain.ErrUnauthenticated)
	}
	return sess, nil
}

func (rt *runtime) open(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := config.LoadWith(ctx, envconfig.OsLookuper())
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: rt.logLevel, Pretty: true, Service: "recipebook"})

	storage := cfg.Storage
	storage.Driver = config.DriverSQLite
	if rt.dbPath != "" {
		storage.SQLitePath = rt.dbPath
	}
	st, closeStore, err := app.OpenStore(ctx, storage, log)
	if err != nil {
		return err
	}
	rt.close = closeStore

	if rt.apiURL != "" {
		rt.svc = app.Remote(rt.apiURL, store.NewSessionSlot(st), log)
		return nil
	}
	rt.svc, err = app.Local(ctx, st, app.LocalOptions{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		AllowAnonymous: cfg.AllowAnonymousRecipes,
		PublicOrigin:   cfg.PublicOrigin,
	}, log)
	return err
}

func (rt *runtime) shutdown(ctx context.Context) error {
	if rt.close == nil {
		return nil
	}
	err := rt.close(ctx)
	rt.close = nil
	return err
}

func newRootCommand() (*cobra.Command, *runtime) {
	rt := &runtime{}
	root := &cobra.Command{
		Use:   "recipebook",
		Short: "Manage a personal recipe book",
		Long: `recipebook keeps recipes, categories and bookmarks.

By default everything is stored in a local SQLite file (--db). With --api the
commands talk to a recipebook server instead; the login session is still kept
in the local file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.open(cmd)
		},
	}
	root.PersistentFlags().StringVar(&rt.dbPath, "db", "", "SQLite file holding local data (default $SQLITE_PATH or recipebook.db)")
	root.PersistentFlags().StringVar(&rt.apiURL, "api", "", "Base URL of a recipebook server")
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")

	root.AddCommand(
		newRegisterCommand(rt),
		newLoginCommand(rt),
		newLogoutCommand(rt),
		newWhoamiCommand(rt),
		newProfileCommand(rt),
		newCategoriesCommand(rt),
		newRecipesCommand(rt),
		newReportCommand(rt),
	)
	return root, rt
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root, rt := newRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	err = errors.Join(err, rt.shutdown(ctx))
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}
