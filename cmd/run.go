package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/app"
	"github.com/abhisek/brainbytes/internal/config"
	"github.com/abhisek/brainbytes/internal/convo"
	"github.com/abhisek/brainbytes/internal/llm"
	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/tutor"
)

// runApp opens the store, builds the tutor, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Log lines would tear the TUI; keep only errors.
	log.SetLevel(log.ErrorLevel)

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := newTutor(cmd.Context(), cfg, st)
	if err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")
	return app.Run(app.Options{
		Tutor:    t,
		Messages: st.MessageRepo(),
		UserID:   userID,
	})
}

// loadConfig reads --config and applies the logging settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Log.Apply(log.StandardLogger()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the configured database. For sqlite the --db flag wins
// over store.dsn, which wins over the default path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dsn := cfg.Store.DSN
	if cfg.Store.Driver == store.DriverSQLite {
		flagPath, _ := cmd.Flags().GetString("db")
		if flagPath != "" || dsn == "" {
			p, err := resolveDBPath(cmd)
			if err != nil {
				return nil, fmt.Errorf("resolve database path: %w", err)
			}
			dsn = p
		}
	}

	st, err := store.Open(cfg.Store.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newTutor builds the generator and the tutor around it. Generator calls
// are recorded in the store's event log.
func newTutor(ctx context.Context, cfg *config.Config, st *store.Store) (*tutor.Tutor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}

	seed := cfg.Tutor.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return tutor.New(tutor.Options{
		Generator: provider,
		Contexts: convo.NewStore(convo.Options{
			TTL:      cfg.Tutor.ContextTTL,
			MaxUsers: cfg.Tutor.MaxUsers,
		}),
		Rand:          rand.New(rand.NewPCG(seed, seed)),
		RemoteTimeout: cfg.LLM.Timeout,
		MaxTokens:     cfg.LLM.MaxTokens,
		Logger:        log.StandardLogger(),
	}), nil
}
