package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/patinfly/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email := c.opts.Email
	if email == "" {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	if !c.authService.CheckUserExists(ctx, email) {
		return fmt.Errorf("no account found for %s", email)
	}

	password, err := c.getPassword(c.opts.Passwords)
	if err != nil {
		return err
	}

	user, err := c.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("wrong password for %s", email)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome, %s\n", user.Name)
	return nil
}
