// Command useradd creates a user account directly against the database,
// bypassing the HTTP endpoint. Intended for bootstrapping and operations.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"orbit/internal/server/auth"
	"orbit/internal/server/config"
	"orbit/internal/server/password"
	"orbit/internal/server/shared/db"
	"orbit/internal/server/users"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {

	cfg := config.LoadConfig()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Enter email")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Println("Enter full name (optional)")
	fullName, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	fullName = strings.TrimSpace(fullName)

	fmt.Println("Enter password")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer rm.Conn().Close()

	tokens, err := auth.NewManager(cfg.SecretKey, cfg.JWTAlgorithm)
	if err != nil {
		return fmt.Errorf("token manager init error: %w", err)
	}

	service := users.NewService(rm.Users(), password.NewHasher(cfg.BcryptCost), tokens, cfg)

	var name *string
	if fullName != "" {
		name = &fullName
	}

	user, err := service.Register(ctx, email, string(pw), name)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
	return nil
}
