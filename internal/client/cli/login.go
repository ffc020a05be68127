package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Printf("Logged in as %s <%s>\n", user.DisplayName(), user.Email)
	return nil
}
