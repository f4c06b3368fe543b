package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutor as an HTTP API server",
	Long: `Starts an HTTP server exposing the tutor: POST /api/messages asks a question,
GET /api/messages lists the conversation, GET /api/stats summarizes it and
/api/users manages learner profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		t, err := newTutor(ctx, cfg, st)
		if err != nil {
			return err
		}
		go t.Contexts().RunJanitor(ctx, cfg.Tutor.JanitorInterval)

		router := api.NewRouter(api.Options{
			Tutor:          t,
			Messages:       st.MessageRepo(),
			Users:          st.UserRepo(),
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			RateBurst:      cfg.Server.RateBurst,
			Logger:         log.StandardLogger(),
		})

		addr := fmt.Sprintf("%s:%d", cmd.Flag("addr").Value.String(), cfg.Server.Port)
		log.WithFields(log.Fields{
			"addr":      addr,
			"generator": cfg.LLM.Provider,
			"store":     cfg.Store.Driver,
		}).Info("starting BrainBytes API server")

		if err := api.Serve(ctx, addr, router); err != nil {
			return err
		}
		log.Info("BrainBytes API server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Address to listen on (empty for all interfaces)")
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides server.port and PORT)")
}
