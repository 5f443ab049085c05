package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/database"
	"github.com/avasek/userdeck/internal/password"
	"github.com/avasek/userdeck/internal/service"
	"github.com/avasek/userdeck/internal/storage"
)

var createUserCmdFlags struct {
	Username  string
	Email     string
	Password  string
	Superuser bool
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	Long:  `Create a user account with an empty profile. At least one of --username or --email must be set.`,
	Run:   createUser,
}

func init() {
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Username, "username", "", "Username for the new user")
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Email, "email", "", "Email address for the new user")
	createUserCmd.Flags().StringVar(&createUserCmdFlags.Password, "password", "", "Password for the new user (leave empty for no password)")
	createUserCmd.Flags().BoolVar(&createUserCmdFlags.Superuser, "superuser", false, "Grant superuser privileges")

	rootCmd.AddCommand(createUserCmd)
}

func createUser(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint: errcheck

	store, err := storage.New(cfg.Storage.Root)
	if err != nil {
		log.Fatalf("failed to initialize picture storage: %v", err)
	}

	svc := service.New(db, password.NewHasher(cfg.Password.BcryptCost), store)

	input := service.CreateUserInput{
		IsSuperuser: createUserCmdFlags.Superuser,
	}
	if createUserCmdFlags.Username != "" {
		input.Username = &createUserCmdFlags.Username
	}
	if createUserCmdFlags.Email != "" {
		input.Email = &createUserCmdFlags.Email
	}
	if createUserCmdFlags.Password != "" {
		input.Password = &createUserCmdFlags.Password
	}

	if err := svc.CreateUser(cmd.Context(), input); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Info("user created", "username", createUserCmdFlags.Username, "email", createUserCmdFlags.Email)
}
