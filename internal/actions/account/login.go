package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
)

// Login verifies --token against the registry and stores it.
func Login(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Dependencies) error {
	token := strings.TrimSpace(flags.String("--token", ""))
	if token == "" {
		return failure.Semantic("", "A token is required, pass --token <token>.")
	}

	registry := deps.Registry.BaseURL()
	email, err := deps.Registry.CurrentUser(ctx, token)
	if err != nil {
		return err
	}

	err = deps.Store.SaveCredentials(domain.Credentials{
		Registry:  registry,
		Token:     token,
		Email:     email,
		CreatedAt: deps.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	deps.Printf("%s as %s on %s\n", deps.Styler.Success("Logged in"), email, registry)
	return nil
}

// Logout deletes the stored credentials of the registry.
func Logout(_ context.Context, _ []string, _ *dispatchers.ParsedFlags, deps Dependencies) error {
	registry := deps.Registry.BaseURL()

	removed, err := deps.Store.DeleteCredentials(registry)
	if err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	if !removed {
		deps.Printf("Not logged in to %s\n", registry)
		return nil
	}

	deps.Printf("%s of %s\n", deps.Styler.Success("Logged out"), registry)
	return nil
}
