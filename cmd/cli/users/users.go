package users

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestlist/nestlist/cmd/cli/output"
	"github.com/nestlist/nestlist/cmd/cli/root"
	"github.com/nestlist/nestlist/cmd/cli/store"
	"github.com/nestlist/nestlist/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
		Long: `Create or list user accounts directly in the document store.
Use this to bootstrap the administrator account before the site has any users.`,
	}

	usersCmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List all users", RunE: runList},
		createCmd(),
		&cobra.Command{Use: "purge-sessions", Short: "Delete expired sessions now", RunE: runPurgeSessions},
	)

	root.GetRoot().AddCommand(usersCmd)
}

func cliContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

// ==========================
// Create User
// ==========================
func createCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			ctx, cancel := cliContext()
			defer cancel()

			db, closeFn, err := store.Open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			user, err := repo.NewUserRepo(db).Create(ctx, email, string(hash))
			if err != nil {
				return err
			}

			fmt.Println("Created user", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

// ==========================
// List Users
// ==========================
func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	users, err := repo.NewUserRepo(db).List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID.Hex(), u.Email, u.CreatedAt.Format(time.RFC3339)})
	}
	output.RenderTable([]string{"ID", "Email", "Created"}, rows)
	return nil
}

// ==========================
// Purge Sessions
// ==========================
func runPurgeSessions(cmd *cobra.Command, args []string) error {
	ctx, cancel := cliContext()
	defer cancel()

	db, closeFn, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := repo.NewSessionRepo(db).DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Println("Purged", n, "expired sessions")
	return nil
}
