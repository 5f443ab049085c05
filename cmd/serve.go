package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avasek/userdeck/internal/api"
	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/database"
	"github.com/avasek/userdeck/internal/password"
	"github.com/avasek/userdeck/internal/service"
	"github.com/avasek/userdeck/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the userdeck server",
	Long:  `Start the userdeck server to handle user and profile management requests.`,
	Example: `userdeck serve --config config.yml
userdeck serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store, err := storage.New(cfg.Storage.Root)
	if err != nil {
		log.Fatalf("failed to initialize picture storage: %v", err)
	}

	svc := service.New(db, password.NewHasher(cfg.Password.BcryptCost), store)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	server := api.New(ctx, cfg, svc)

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("userdeck started successfully")
	<-c
	log.Info("shutting down gracefully...")

	// Give time for graceful shutdown
	cancel()
	time.Sleep(2 * time.Second)

	if err := db.Close(); err != nil {
		log.Error("failed to close database", "error", err)
	}
}
